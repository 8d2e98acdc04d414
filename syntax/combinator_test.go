package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCombinatorLambdaWithCaret(t *testing.T) {
	e, err := parseCombinator("^x.x")
	assert.NoError(t, err)
	assert.Equal(t, "λx.x", e.String())
}

func TestParseCombinatorLambdaWithBackslash(t *testing.T) {
	e, err := parseCombinator(`\x.x`)
	assert.NoError(t, err)
	assert.Equal(t, "λx.x", e.String())
}

func TestParseCombinatorPrefixApply(t *testing.T) {
	e, err := parseCombinator("`x y")
	assert.NoError(t, err)
	assert.Equal(t, "x y", e.String())
}

func TestParseCombinatorNestedPrefixApplyIsLeftAssociative(t *testing.T) {
	// ``x y z == Apply(Apply(x, y), z)
	e, err := parseCombinator("``x y z")
	assert.NoError(t, err)
	assert.Equal(t, "x y z", e.String())
}

func TestParseCombinatorSymbolAndGrouping(t *testing.T) {
	e, err := parseCombinator(":a")
	assert.NoError(t, err)
	assert.Equal(t, ":a", e.String())

	e, err = parseCombinator("(^x.x)")
	assert.NoError(t, err)
	assert.Equal(t, "λx.x", e.String())
}

func TestParseFallsBackToCombinatorSyntax(t *testing.T) {
	// Parse tries the ecmascript grammar first; "`x y" isn't valid there,
	// so it must fall back to the combinator grammar.
	e, err := Parse("`x y")
	assert.NoError(t, err)
	assert.Equal(t, "x y", e.String())
}
