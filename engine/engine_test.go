package engine

import (
	"errors"
	"testing"

	"github.com/opencalc/lambda"
	"github.com/stretchr/testify/assert"
)

// recordingHistory is an in-memory History double: it appends every push
// to a log, and can be told to fail the next N pushes (to exercise
// rollback).
type recordingHistory struct {
	defs     []lambda.Function
	dels     []lambda.Identifier
	cleared  int
	failNext int
}

func (h *recordingHistory) PushDef(f lambda.Function) error {
	if h.failNext > 0 {
		h.failNext--
		return errors.New("journal write failed")
	}
	h.defs = append(h.defs, f)
	return nil
}

func (h *recordingHistory) PushDel(name lambda.Identifier) error {
	if h.failNext > 0 {
		h.failNext--
		return errors.New("journal write failed")
	}
	h.dels = append(h.dels, name)
	return nil
}

func (h *recordingHistory) Clear() error {
	h.cleared++
	return nil
}

func TestApplyUpdateDefinesAndJournals(t *testing.T) {
	ctx := lambda.NewContext()
	hist := &recordingHistory{}
	e := New(ctx, hist, 0)

	f := lambda.MustNewFunction("double", []lambda.Identifier{"x"},
		lambda.A(lambda.V("ADD"), lambda.V("x"), lambda.V("x")))

	res, err := e.Apply(Update{Func: f})
	assert.NoError(t, err)
	assert.Equal(t, Defined{Name: "double"}, res)

	got, ok := ctx.Get("double")
	assert.True(t, ok)
	assert.Equal(t, f, got)
	assert.Len(t, hist.defs, 1)
}

func TestApplyUpdateSelfReferentialRewritesToDel(t *testing.T) {
	ctx := lambda.NewContext()
	ctx.Def(lambda.MustNewFunction("f", nil, lambda.Sym("placeholder")))
	hist := &recordingHistory{}
	e := New(ctx, hist, 0)

	res, err := e.Apply(Update{Func: lambda.MustNewFunction("f", nil, lambda.V("f"))})
	assert.NoError(t, err)
	assert.Equal(t, Removed{Name: "f"}, res)

	_, ok := ctx.Get("f")
	assert.False(t, ok)
	assert.Equal(t, []lambda.Identifier{"f"}, hist.dels)
}

func TestApplyUpdateRollsBackNewDefinitionOnHistoryFailure(t *testing.T) {
	ctx := lambda.NewContext()
	hist := &recordingHistory{failNext: 1}
	e := New(ctx, hist, 0)

	f := lambda.MustNewFunction("g", []lambda.Identifier{"x"}, lambda.V("x"))
	_, err := e.Apply(Update{Func: f})
	assert.Error(t, err)

	_, ok := ctx.Get("g")
	assert.False(t, ok, "a history failure must leave no trace of the attempted definition")
}

func TestApplyUpdateRollsBackReplacementOnHistoryFailure(t *testing.T) {
	ctx := lambda.NewContext()
	original := lambda.MustNewFunction("g", []lambda.Identifier{"x"}, lambda.V("x"))
	ctx.Def(original)
	hist := &recordingHistory{failNext: 1}
	e := New(ctx, hist, 0)

	replacement := lambda.MustNewFunction("g", []lambda.Identifier{"x", "y"}, lambda.V("y"))
	_, err := e.Apply(Update{Func: replacement})
	assert.Error(t, err)

	got, ok := ctx.Get("g")
	assert.True(t, ok)
	assert.Equal(t, original, got, "a history failure must restore the prior definition")
}

func TestApplyDelUnknownIdentifier(t *testing.T) {
	ctx := lambda.NewContext()
	e := New(ctx, nil, 0)

	_, err := e.Apply(Del{Name: "nope"})
	assert.ErrorIs(t, err, lambda.ErrUnknownIdentifier)
}

func TestApplyDelRollsBackOnHistoryFailure(t *testing.T) {
	ctx := lambda.NewContext()
	f := lambda.MustNewFunction("g", nil, lambda.Sym("a"))
	ctx.Def(f)
	hist := &recordingHistory{failNext: 1}
	e := New(ctx, hist, 0)

	_, err := e.Apply(Del{Name: "g"})
	assert.Error(t, err)

	got, ok := ctx.Get("g")
	assert.True(t, ok)
	assert.Equal(t, f, got)
}

func TestApplyEvalProducesFullStepStream(t *testing.T) {
	ctx := lambda.DefaultContext()
	e := New(ctx, nil, 0)

	e3 := lambda.A(lambda.V("s"), lambda.Sym("a"), lambda.Sym("b"), lambda.Sym("c"))
	res, err := e.Apply(Eval{Expr: e3})
	assert.NoError(t, err)

	steps, ok := res.(Steps)
	if !assert.True(t, ok) {
		return
	}
	assert.Len(t, steps.Terms, 1)
	assert.Equal(t, ":a :c (:b :c)", steps.Terms[0].String())
}

func TestApplyEvalLastBoundsByStepLimit(t *testing.T) {
	ctx := lambda.DefaultContext()
	e := New(ctx, nil, 1)

	expr := lambda.A(lambda.V("i"), lambda.A(lambda.V("i"), lambda.Sym("a")))
	res, err := e.Apply(EvalLast{Expr: expr})
	assert.NoError(t, err)

	final, ok := res.(Final)
	if !assert.True(t, ok) {
		return
	}
	assert.True(t, final.More)
	assert.Equal(t, "i :a", final.Expr.String())
}

func TestApplyInfoAndGlobal(t *testing.T) {
	ctx := lambda.NewContext()
	ctx.Def(lambda.MustNewFunction("f", []lambda.Identifier{"x"}, lambda.V("x")))
	e := New(ctx, nil, 0)

	res, err := e.Apply(Info{Name: "f"})
	assert.NoError(t, err)
	def, ok := res.(Definition)
	if assert.True(t, ok) {
		assert.Equal(t, lambda.Identifier("f"), def.Func.Name)
	}

	_, err = e.Apply(Info{Name: "missing"})
	assert.ErrorIs(t, err, lambda.ErrUnknownIdentifier)

	res, err = e.Apply(Global{})
	assert.NoError(t, err)
	listing, ok := res.(Listing)
	if assert.True(t, ok) {
		assert.Len(t, listing.Funcs, 1)
	}
}

func TestApplyUnlambdaUsesDefaultSKI(t *testing.T) {
	ctx := lambda.NewContext()
	e := New(ctx, nil, 0)

	res, err := e.Apply(Unlambda{Expr: lambda.L(lambda.V("x"), "x")})
	assert.NoError(t, err)
	translated, ok := res.(Translated)
	if assert.True(t, ok) {
		assert.Equal(t, lambda.V("i"), translated.Expr)
	}
}
