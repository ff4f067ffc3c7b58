package store

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/player-selector/fixedselect"
	"github.com/zeu5/player-selector/types"
)

func bestRoster(t *testing.T) *types.Trace {
	t.Helper()
	agent := types.NewAgent(&types.AgentConfig{
		Episodes:    1,
		Horizon:     10,
		Policy:      types.NewSequencePolicy(8, 1, 3),
		Environment: fixedselect.NewPlayerSelectorEnvironment(),
	})
	trace, err := agent.RunEpisode(0)
	require.NoError(t, err)
	return trace
}

func TestFileStore(t *testing.T) {
	s := NewFileStore(t.TempDir())
	defer s.Close()

	trace := bestRoster(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, "exp", 0, 0, trace))
	require.NoError(t, s.Record(ctx, "exp", 0, 1, trace))

	f, err := os.Open(s.Path("exp", 0))
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lines := 0
	for scanner.Scan() {
		var record struct {
			Experiment string            `json:"experiment"`
			Episode    int               `json:"episode"`
			Return     float64           `json:"return"`
			Done       bool              `json:"done"`
			Steps      []json.RawMessage `json:"steps"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		assert.Equal(t, "exp", record.Experiment)
		assert.Equal(t, lines, record.Episode)
		assert.Equal(t, 293.0+289.0+500.0, record.Return)
		assert.True(t, record.Done)
		assert.Len(t, record.Steps, 3)
		lines += 1
	}
	assert.Equal(t, 2, lines)
}

func TestRedisKeys(t *testing.T) {
	s := NewRedisStore("127.0.0.1:0", "selector")
	defer s.Close()
	assert.Equal(t, "selector:PlayerSelector-v0:2", s.TracesKey("PlayerSelector-v0", 2))
	assert.Equal(t, "selector:PlayerSelector-v0:returns", s.ReturnsKey("PlayerSelector-v0"))
}
