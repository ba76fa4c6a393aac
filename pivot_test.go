package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexFiltersUnknownAlgos(t *testing.T) {
	rows := []Row{
		{Algo: "SHA-256", File: "a.data"},
		{Algo: "MD5", File: "a.data"},
		{Algo: "BLAKE3", File: "b.data"},
		{Algo: "PH128", File: "a.data"},
	}
	ix := NewIndex(rows, DefaultPair)

	// b.data only appeared with an unrecognized algorithm.
	assert.Equal(t, []string{"a.data"}, ix.Files())
	_, _, ok := ix.Both("b.data")
	assert.False(t, ok)

	first, second, ok := ix.Both("a.data")
	require.True(t, ok)
	assert.Equal(t, "SHA-256", first.Algo)
	assert.Equal(t, "PH128", second.Algo)
}

func TestIndexFileOrder(t *testing.T) {
	rows := []Row{
		{Algo: "SHA-256", File: "z.data"},
		{Algo: "SHA-256", File: "a.data"},
		{Algo: "PH128", File: "z.data"},
		{Algo: "SHA-256", File: "m.data"},
		{Algo: "PH128", File: "a.data"},
	}
	ix := NewIndex(rows, DefaultPair)
	assert.Equal(t, []string{"z.data", "a.data", "m.data"}, ix.Files())
}

func TestIndexDuplicateLastWins(t *testing.T) {
	rows := []Row{
		{Algo: "SHA-256", File: "a.data", ElapsedMs: 1},
		{Algo: "PH128", File: "a.data", ElapsedMs: 2},
		{Algo: "SHA-256", File: "a.data", ElapsedMs: 3},
	}
	ix := NewIndex(rows, DefaultPair)
	first, _, ok := ix.Both("a.data")
	require.True(t, ok)
	assert.Equal(t, 3.0, first.ElapsedMs)
	assert.Equal(t, []string{"a.data"}, ix.Files())
}

func TestIndexRequiresBothAlgos(t *testing.T) {
	rows := []Row{
		{Algo: "SHA-256", File: "lonely.bin"},
		{Algo: "SHA-256", File: "both.bin"},
		{Algo: "PH128", File: "both.bin"},
	}
	ix := NewIndex(rows, DefaultPair)

	_, _, ok := ix.Both("lonely.bin")
	assert.False(t, ok)
	_, _, ok = ix.Both("both.bin")
	assert.True(t, ok)
	_, _, ok = ix.Both("absent.bin")
	assert.False(t, ok)
}

func TestIndexCustomPair(t *testing.T) {
	pair := AlgoPair{First: "K12", Second: "PH256"}
	rows := []Row{
		{Algo: "K12", File: "a.data"},
		{Algo: "SHA-256", File: "a.data"},
		{Algo: "PH256", File: "a.data"},
	}
	ix := NewIndex(rows, pair)
	first, second, ok := ix.Both("a.data")
	require.True(t, ok)
	assert.Equal(t, "K12", first.Algo)
	assert.Equal(t, "PH256", second.Algo)
	assert.Equal(t, pair, ix.Pair())
}
