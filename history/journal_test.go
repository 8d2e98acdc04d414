package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencalc/lambda"
)

func TestFileJournalRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.yaml")

	j, err := Open(path)
	require.NoError(t, err)

	plus := lambda.MustNewFunction("PLUS1", []lambda.Identifier{"n"},
		lambda.A(lambda.V("SUCC"), lambda.V("n")))
	require.NoError(t, j.PushDef(plus))
	require.NoError(t, j.PushDef(lambda.MustNewFunction("ALIAS", nil, lambda.Sym("tag"))))
	require.NoError(t, j.PushDel("ALIAS"))
	require.NoError(t, j.Close())

	ctx, err := Replay(path, lambda.NewContext())
	require.NoError(t, err)

	got, ok := ctx.Get("PLUS1")
	require.True(t, ok)
	assert.Equal(t, plus.Params, got.Params)
	assert.Equal(t, plus.Body.String(), got.Body.String())

	_, ok = ctx.Get("ALIAS")
	assert.False(t, ok, "ALIAS was deleted after being defined")
}

func TestFileJournalClearTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.yaml")

	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.PushDef(lambda.MustNewFunction("i", []lambda.Identifier{"x"}, lambda.V("x"))))
	require.NoError(t, j.Clear())
	require.NoError(t, j.Close())

	ctx, err := Replay(path, lambda.NewContext())
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Len())
}

func TestReplayMissingFileReturnsBase(t *testing.T) {
	base := lambda.DefaultContext()
	ctx, err := Replay(filepath.Join(t.TempDir(), "does-not-exist.yaml"), base)
	require.NoError(t, err)
	assert.Equal(t, base.Len(), ctx.Len())
}

func TestMemoryRecordsPushesAndHonorsErrOnPush(t *testing.T) {
	m := &Memory{}
	f := lambda.MustNewFunction("i", []lambda.Identifier{"x"}, lambda.V("x"))
	require.NoError(t, m.PushDef(f))
	require.NoError(t, m.PushDel("i"))
	assert.Equal(t, []lambda.Function{f}, m.Defs)
	assert.Equal(t, []lambda.Identifier{"i"}, m.Dels)

	m.ErrOnPush = assert.AnError
	assert.Error(t, m.PushDef(f))
	assert.Error(t, m.PushDel("i"))
	assert.Error(t, m.Clear())
}
