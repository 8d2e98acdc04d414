package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArityOfApplyIsNeverARedexCandidate(t *testing.T) {
	ctx := DefaultContext()
	_, ok := arity(ctx, A(V("i"), Sym("a")))
	assert.False(t, ok)
}

func TestArityOfSymbolIsNeverARedexCandidate(t *testing.T) {
	ctx := DefaultContext()
	_, ok := arity(ctx, Sym("a"))
	assert.False(t, ok)
}

func TestArityOfFreeVariableIsNeverARedexCandidate(t *testing.T) {
	ctx := NewContext()
	_, ok := arity(ctx, V("unbound"))
	assert.False(t, ok)
}

func TestArityOfLambdaIsAlwaysOne(t *testing.T) {
	n, ok := arity(NewContext(), L(V("x"), "x"))
	assert.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestArityOfBoundVariableIsItsParamCount(t *testing.T) {
	ctx := NewContext()
	ctx.Def(MustNewFunction("s", []Identifier{"x", "y", "z"}, V("x")))
	n, ok := arity(ctx, V("s"))
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestArityOfAliasIsZero(t *testing.T) {
	ctx := NewContext()
	ctx.Def(MustNewFunction("NIL", nil, Sym("nil")))
	n, ok := arity(ctx, V("NIL"))
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestApplyLambdaBetaSteps(t *testing.T) {
	head := L(V("x"), "x")
	err := apply(NewContext(), &head, []Expr{Sym("a")})
	assert.NoError(t, err)
	assert.Equal(t, Sym("a"), head)
}

func TestApplyLambdaRejectsWrongArgCount(t *testing.T) {
	head := L(V("x"), "x")
	err := apply(NewContext(), &head, []Expr{Sym("a"), Sym("b")})
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestApplyAliasSubstitutesBodyVerbatim(t *testing.T) {
	ctx := NewContext()
	ctx.Def(MustNewFunction("NIL", nil, Sym("nil")))
	head := V("NIL")
	err := apply(ctx, &head, nil)
	assert.NoError(t, err)
	assert.Equal(t, Sym("nil"), head)
}

func TestApplyFunctionSubstitutesAllParamsSimultaneously(t *testing.T) {
	ctx := NewContext()
	ctx.Def(MustNewFunction("s", []Identifier{"x", "y", "z"},
		A(A(V("x"), V("z")), A(V("y"), V("z")))))
	head := V("s")
	err := apply(ctx, &head, []Expr{Sym("a"), Sym("b"), Sym("c")})
	assert.NoError(t, err)
	assert.Equal(t, ":a :c (:b :c)", head.String())
}

func TestApplyFunctionDoesNotLetAnEarlierArgumentCollideWithALaterParam(t *testing.T) {
	// k(x, y) = x, applied to (y, :a): the free variable y supplied for x
	// must not be mistaken for a later occurrence of the parameter y once
	// substitution reaches it. Sequential left-to-right substitution gets
	// this wrong; simultaneous substitution must not.
	ctx := NewContext()
	ctx.Def(MustNewFunction("k", []Identifier{"x", "y"}, V("x")))
	head := V("k")
	err := apply(ctx, &head, []Expr{V("y"), Sym("a")})
	assert.NoError(t, err)
	assert.Equal(t, V("y"), head)
}

func TestApplyFunctionSubstitutesSUnderArgumentNameCollision(t *testing.T) {
	// s(x, y, z) = (x z) (y z), applied to (z, :b, :c): the free variable z
	// supplied for x must survive untouched by the later substitution of
	// the parameter named z, and every occurrence of the z parameter in
	// the body must still become :c.
	ctx := NewContext()
	ctx.Def(MustNewFunction("s", []Identifier{"x", "y", "z"},
		A(A(V("x"), V("z")), A(V("y"), V("z")))))
	head := V("s")
	err := apply(ctx, &head, []Expr{V("z"), Sym("b"), Sym("c")})
	assert.NoError(t, err)
	assert.Equal(t, "z :c (:b :c)", head.String())
}

func TestApplyUnknownHeadIsInvariantViolation(t *testing.T) {
	head := Sym("a")
	err := apply(NewContext(), &head, nil)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestApplyUnboundVariableIsInvariantViolation(t *testing.T) {
	head := V("unbound")
	err := apply(NewContext(), &head, nil)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}
