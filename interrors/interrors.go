// Package interrors defines the evaluator's seven runtime error kinds and
// formats them the way original_source's error messages read: terse,
// backtick-quoted, ending in "doesn't make sense" or an equivalent clause.
package interrors

import "fmt"

// Kind distinguishes the seven runtime error categories the evaluator can
// raise.
type Kind int

const (
	Argument Kind = iota
	ArrayIndexOutOfBounds
	RedefinedFunction
	Step
	Type
	UndefinedFunction
	UndefinedVariable
)

func (k Kind) String() string {
	switch k {
	case Argument:
		return "Argument"
	case ArrayIndexOutOfBounds:
		return "ArrayIndexOutOfBounds"
	case RedefinedFunction:
		return "RedefinedFunction"
	case Step:
		return "Step"
	case Type:
		return "Type"
	case UndefinedFunction:
		return "UndefinedFunction"
	case UndefinedVariable:
		return "UndefinedVariable"
	default:
		return "Unknown"
	}
}

// Error is a runtime error: a Kind plus the short human message that
// describes it.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// UndefinedVariableError reports a reference to an unbound variable.
func UndefinedVariableError(name string) *Error {
	return New(UndefinedVariable, "The variable `%s` is not defined, so it can't be used in an expression", name)
}

// UndefinedFunctionError reports a call to a function that was never
// defined.
func UndefinedFunctionError(name string) *Error {
	return New(UndefinedFunction, "The function `%s` is not defined, so it can't be called", name)
}

// RedefinedFunctionError reports a duplicate Defun of the same name.
func RedefinedFunctionError(name string) *Error {
	return New(RedefinedFunction, "The function `%s` is already defined, so it can't be defined again", name)
}

// ArgumentError reports an arity mismatch on a function call.
func ArgumentError(name string, want, got int) *Error {
	return New(Argument, "The function `%s` expects %d argument(s), but it was called with %d", name, want, got)
}

// ArrayIndexError reports an out-of-range index against a repr of the
// indexing expression built up as the index chain is walked, e.g. `a[0][1]`.
func ArrayIndexError(repr string, index, length int) *Error {
	return New(ArrayIndexOutOfBounds, "The index %d is out of bounds for `%s`, which has length %d", index, repr, length)
}

// TypeError reports a value of the wrong type used somewhere an
// expression, statement or return doesn't make sense with it.
func TypeError(format string, args ...interface{}) *Error {
	return New(Type, format, args...)
}

// StepError reports a direction mismatch or a zero stride in step(...).
func StepError(start, end, step int64) *Error {
	switch {
	case step == 0:
		return New(Step, "step(%d, %d, %d) doesn't make sense: the step can't be 0", start, end, step)
	case start <= end && step < 0:
		return New(Step, "step(%d, %d, %d) doesn't make sense: counting up from %d to %d needs a positive step", start, end, step, start, end)
	default:
		return New(Step, "step(%d, %d, %d) doesn't make sense: counting down from %d to %d needs a negative step", start, end, step, start, end)
	}
}
