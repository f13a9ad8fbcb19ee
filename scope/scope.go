// Package scope implements the lexical scope chain shared by the global
// scope and every function-call frame.
package scope

import "github.com/saghm/pallang/ast"

// Scope is a single frame of variable bindings plus a link to its parent.
// Unlike the teacher's Scope, there is no Consts/LetVars/LetTypes
// tracking: this language has no const/typed-let distinction, only a
// single `let` that always (re)binds in the innermost scope.
//
// Parent exists only so ExitScope can restore the prior frame once this
// one is popped; a called function has no lexical environment and
// cannot see an enclosing call's locals, so LookUp and Assign never
// walk it.
type Scope struct {
	Variables map[string]ast.Value
	Parent    *Scope
}

// NewScope creates a scope chained to parent (nil for the global scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{Variables: make(map[string]ast.Value), Parent: parent}
}

// LookUp searches this scope's own bindings for varName. It never walks
// Parent: a function's locals are invisible to the calls it makes.
func (s *Scope) LookUp(varName string) (ast.Value, bool) {
	v, ok := s.Variables[varName]
	return v, ok
}

// Bind inserts or overwrites varName in this scope only.
func (s *Scope) Bind(varName string, val ast.Value) {
	s.Variables[varName] = val
}

// Assign updates varName if this scope already holds it, returning
// whether it did. It never walks Parent, for the same reason LookUp
// doesn't.
func (s *Scope) Assign(varName string, val ast.Value) (*Scope, bool) {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = val
		return s, true
	}
	return nil, false
}

// ContainsVar reports whether varName is bound in this scope.
func (s *Scope) ContainsVar(varName string) bool {
	_, ok := s.LookUp(varName)
	return ok
}

// Len returns the number of bindings in this scope alone (callers sum
// across the chain when they need a whole-state count).
func (s *Scope) Len() int {
	return len(s.Variables)
}

// Copy produces an independent scope chain with the same bindings: the
// whole parent chain is cloned too, not just this frame, so that a
// recursive call's frame can never alias an earlier call's frame on the
// same chain.
func (s *Scope) Copy() *Scope {
	if s == nil {
		return nil
	}
	newScope := &Scope{Variables: make(map[string]ast.Value, len(s.Variables)), Parent: s.Parent.Copy()}
	for k, v := range s.Variables {
		newScope.Variables[k] = v
	}
	return newScope
}
