package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeVarsVariable(t *testing.T) {
	fv := FreeVars(V("x"))
	assert.True(t, fv.Contains("x"))
	assert.Len(t, fv, 1)
}

func TestFreeVarsSymbolIsAlwaysClosed(t *testing.T) {
	assert.Len(t, FreeVars(Sym("x")), 0)
}

func TestFreeVarsLambdaBindsParam(t *testing.T) {
	assert.Len(t, FreeVars(L(V("x"), "x")), 0)
	fv := FreeVars(L(V("y"), "x"))
	assert.True(t, fv.Contains("y"))
	assert.Len(t, fv, 1)
}

func TestFreeVarsApplyUnionsBothSides(t *testing.T) {
	fv := FreeVars(A(V("x"), V("y")))
	assert.True(t, fv.Contains("x"))
	assert.True(t, fv.Contains("y"))
	assert.Len(t, fv, 2)
}

func TestFreeVarsNestedBindingShadowsOuter(t *testing.T) {
	// λx.λx.x has no free variables: the inner x shadows the outer param.
	e := L(L(V("x"), "x"), "x")
	assert.Len(t, FreeVars(e), 0)
}
