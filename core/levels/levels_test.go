package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/quadrants/core/model"
	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
)

var testLogger = game_log.Discard()

func TestBuiltinSetIsValidAndRampsDensity(t *testing.T) {
	defs, err := Builtin()
	require.NoError(t, err)
	require.Len(t, defs, 5)

	assert.Equal(t, "Four corners", defs[0].Name)
	assert.Equal(t, 1, defs[0].Density)
	assert.Equal(t, model.MaxDensity, defs[len(defs)-1].Density)
	for i := 1; i < len(defs); i++ {
		assert.GreaterOrEqual(t, defs[i].Density, defs[i-1].Density)
	}
	for _, d := range defs {
		assert.LessOrEqual(t, len(d.VertexIDs), 6)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte(`
[[puzzle]]
name = "bad"
density = 1
vertices = [0, 1]
edges = [[0, 1]]
neighbors = [[1], [7]]
`))
	assert.ErrorIs(t, err, model.ErrUnknownNeighbor)

	_, err = Parse([]byte(`
[[puzzle]]
name = "tri"
density = 1
vertices = [0, 1]
edges = [[0, 1, 2]]
neighbors = [[1], [0]]
`))
	assert.ErrorIs(t, err, model.ErrEdgeMismatch)

	_, err = Parse([]byte(`
[[puzzle]]
name = "typo"
density = 1
vertices = [0]
neighbours = [[]]
`))
	assert.ErrorContains(t, err, "unknown key")

	_, err = Parse([]byte(``))
	assert.ErrorIs(t, err, ErrEmptySet)

	_, err = Parse([]byte(`[[puzzle]`))
	assert.Error(t, err)
}

func TestSequencerExhaustsAfterN(t *testing.T) {
	defs, err := Builtin()
	require.NoError(t, err)
	s, err := New(defs, testLogger)
	require.NoError(t, err)

	_, ok := s.Current()
	assert.False(t, ok, "nothing handed out yet")
	assert.Equal(t, 0, s.Index())

	for i := 0; i < len(defs); i++ {
		d, ok := s.Advance()
		require.True(t, ok, "call %d", i+1)
		assert.Equal(t, defs[i].Name, d.Name)
		cur, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, d.Name, cur.Name)
		assert.Equal(t, i+1, s.Index())
		assert.Equal(t, len(defs)-i-1, s.Remaining())
	}
	assert.False(t, s.Exhausted())

	_, ok = s.Advance()
	assert.False(t, ok)
	assert.True(t, s.Exhausted())
	_, ok = s.Advance()
	assert.False(t, ok, "exhaustion is permanent")
	_, ok = s.Current()
	assert.False(t, ok)
	assert.Equal(t, len(defs), s.Index())
}

func TestNewRejectsEmptyAndInvalid(t *testing.T) {
	_, err := New(nil, testLogger)
	assert.ErrorIs(t, err, ErrEmptySet)

	_, err = New([]model.Definition{{Name: "x", Density: 1}}, testLogger)
	assert.ErrorIs(t, err, model.ErrEmptyDefinition)
}

func TestNewCopiesDefinitions(t *testing.T) {
	defs, err := Builtin()
	require.NoError(t, err)
	s, err := New(defs, testLogger)
	require.NoError(t, err)
	defs[0].Name = "mutated"
	d, _ := s.Advance()
	assert.Equal(t, "Four corners", d.Name)
}

func TestLoadEmptyPathIsBuiltin(t *testing.T) {
	got, err := Load("")
	require.NoError(t, err)
	want, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[puzzle]]
name = "pair"
density = 1
vertices = [0, 1]
edges = [[0, 1]]
neighbors = [[1], [0]]
`), 0o644))

	defs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "pair", defs[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
