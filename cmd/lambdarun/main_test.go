package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencalc/lambda"
)

func TestTryToIntRecognizesChurchNumerals(t *testing.T) {
	ctx := lambda.DefaultContext()
	for n := 0; n <= 5; n++ {
		f, _ := ctx.Get(lambda.Identifier(string(rune('0' + n))))
		got, ok := tryToInt(f.Body)
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
}

func TestTryToIntRejectsNonNumerals(t *testing.T) {
	_, ok := tryToInt(lambda.Sym("a"))
	assert.False(t, ok)

	_, ok = tryToInt(lambda.L(lambda.V("x"), "x", "y"))
	assert.False(t, ok)
}

func TestTryToBoolRecognizesChurchBooleans(t *testing.T) {
	ctx := lambda.DefaultContext()

	tru, _ := ctx.Get("TRUE")
	b, ok := tryToBool(tru.Body)
	assert.True(t, ok)
	assert.True(t, b)

	fls, _ := ctx.Get("FALSE")
	b, ok = tryToBool(fls.Body)
	assert.True(t, ok)
	assert.False(t, b)
}

func TestTryToBoolRejectsNonBooleans(t *testing.T) {
	_, ok := tryToBool(lambda.Sym("a"))
	assert.False(t, ok)
}
