// Package state bundles the global scope, the current call's scope chain,
// and the function table that together make up a running program's
// mutable state.
package state

import (
	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/function"
	"github.com/saghm/pallang/interrors"
	"github.com/saghm/pallang/scope"
)

// State is the interpreter's mutable store: one global scope, an optional
// chain of scopes pushed by in-flight function calls, and the table of
// defined functions.
//
// Function-call dispatch (evaluating a body statement by statement) lives
// in package eval rather than here, because it needs to evaluate
// ast.Statement nodes; State itself stays a plain data structure, the way
// original_source's state module leaves `Function` free of evaluation
// logic and lets eval/mod.rs drive the call.
type State struct {
	global    *scope.Scope
	current   *scope.Scope
	functions map[string]*function.Function
}

// New builds an empty State with just a global scope.
func New() *State {
	return &State{global: scope.NewScope(nil), functions: make(map[string]*function.Function)}
}

// Lookup reads a variable, checking the current call's own scope (if a
// call is in flight) before the global scope. A call never sees an
// enclosing call's locals: there is no closure over outer scopes, only
// the call's own arguments/locals plus whatever is global.
func (s *State) Lookup(name string) (ast.Value, bool) {
	if s.current != nil {
		if v, ok := s.current.LookUp(name); ok {
			return v, true
		}
	}
	return s.global.LookUp(name)
}

// Assign updates an existing binding, checking the current call's own
// scope first, then global. It fails with UndefinedVariable if name is
// not already bound in either.
func (s *State) Assign(name string, val ast.Value) error {
	if s.current != nil {
		if _, ok := s.current.Assign(name, val); ok {
			return nil
		}
	}
	if _, ok := s.global.Assign(name, val); ok {
		return nil
	}
	return interrors.UndefinedVariableError(name)
}

// DefineVar binds name in the innermost available scope: the head of the
// current chain if a call is in flight, else the global scope. Unlike
// Assign, DefineVar always succeeds, creating the binding if needed.
func (s *State) DefineVar(name string, val ast.Value) {
	if s.current != nil {
		s.current.Bind(name, val)
		return
	}
	s.global.Bind(name, val)
}

// DefineFunc inserts a new function definition, failing with
// RedefinedFunction if name is already taken.
func (s *State) DefineFunc(name string, fn *function.Function) error {
	if _, ok := s.functions[name]; ok {
		return interrors.RedefinedFunctionError(name)
	}
	s.functions[name] = fn
	return nil
}

// LookupFunc retrieves a defined function by name.
func (s *State) LookupFunc(name string) (*function.Function, bool) {
	fn, ok := s.functions[name]
	return fn, ok
}

// EnterScope pushes a new, empty scope for a call about to run. Parent
// is set to a clone of whatever chain was current, purely so ExitScope
// can restore it afterward; the new scope's own bindings start empty,
// since a call sees only its own arguments/locals and the global scope,
// never an enclosing call's. A nil current chain means "no call in
// flight"; entering from there starts a fresh one.
func (s *State) EnterScope() {
	s.current = scope.NewScope(s.current.Copy())
}

// ExitScope pops the innermost scope, making its parent current again.
// Safe to call even when current is nil.
func (s *State) ExitScope() {
	if s.current == nil {
		return
	}
	s.current = s.current.Parent
}

// Len sums the bindings across the current chain and the global scope;
// exposed for tests that assert on overall state size.
func (s *State) Len() int {
	total := s.global.Len()
	for sc := s.current; sc != nil; sc = sc.Parent {
		total += sc.Len()
	}
	return total
}
