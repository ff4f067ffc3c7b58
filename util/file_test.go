package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendLines(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "out.jsonl")
	require.NoError(t, AppendLines(file, "a", "b"))
	require.NoError(t, AppendLines(file, "c"))

	bs, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", string(bs))
}

func TestWriteLinesOverwrites(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteLines(file, "old"))
	require.NoError(t, WriteLines(file, "x", "y"))

	bs, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "x\ny\n", string(bs))
}
