package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/scope"
)

func TestScope_BindAndLookUp(t *testing.T) {
	s := scope.NewScope(nil)
	s.Bind("x", ast.Int(1))

	v, ok := s.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, ast.Int(1), v)

	_, ok = s.LookUp("y")
	assert.False(t, ok)
}

func TestScope_LookUpDoesNotWalkParentChain(t *testing.T) {
	parent := scope.NewScope(nil)
	parent.Bind("x", ast.Int(1))
	child := scope.NewScope(parent)

	// A called function has no lexical environment: it cannot see a
	// value bound only in its Parent chain.
	_, ok := child.LookUp("x")
	assert.False(t, ok)
}

func TestScope_AssignFailsWhenUnbound(t *testing.T) {
	s := scope.NewScope(nil)
	_, ok := s.Assign("x", ast.Int(5))
	assert.False(t, ok)
}

func TestScope_CopyDeepCopiesWholeChain(t *testing.T) {
	grandparent := scope.NewScope(nil)
	grandparent.Bind("n", ast.Int(1))
	parent := scope.NewScope(grandparent)
	parent.Bind("m", ast.Int(2))

	clone := parent.Copy()

	// Mutating the original chain must not be visible through the clone,
	// which is what makes recursive calls' restored frames independent
	// of each other even when they share an outer frame at call time.
	// LookUp itself never walks Parent, so the chain is inspected frame
	// by frame here.
	grandparent.Bind("n", ast.Int(99))
	parent.Bind("m", ast.Int(99))

	m, ok := clone.LookUp("m")
	require.True(t, ok)
	assert.Equal(t, ast.Int(2), m)

	require.NotNil(t, clone.Parent)
	n, ok := clone.Parent.LookUp("n")
	require.True(t, ok)
	assert.Equal(t, ast.Int(1), n)
}

func TestScope_CopyNil(t *testing.T) {
	var s *scope.Scope
	assert.Nil(t, s.Copy())
}
