package lexer

import "unicode"

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isIdentStart and isIdentContinue approximate Unicode XID identifier
// rules (the classification original_source's tokenizer delegates to
// UnicodeXID for) with the standard library's unicode package: no XID
// table ships anywhere in the example pack, and the teacher's own lexer
// reaches for unicode.IsLetter/IsDigit for the same purpose rather than a
// dedicated identifier-class library.
func isIdentStart(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b))
}

func isIdentContinue(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}
