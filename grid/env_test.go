package grid

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/player-selector/types"
)

func step(t *testing.T, e *TeamCreatorEnvironment, a types.Action) *types.StepResult {
	t.Helper()
	r, err := e.Step(a)
	require.NoError(t, err)
	return r
}

func TestEncodeDecode(t *testing.T) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			for hp := 0; hp < 2; hp++ {
				r, c, h := Decode(Encode(row, col, hp))
				assert.Equal(t, []int{row, col, hp}, []int{r, c, h})
			}
		}
	}
	assert.Equal(t, ((2*5+3)*4 + 1), Encode(2, 3, 1))
}

func TestSlots(t *testing.T) {
	assert.Equal(t, TargetPlayers, Slots())
}

func TestInitialState(t *testing.T) {
	e := NewTeamCreatorEnvironment()
	assert.Equal(t, Position{}, e.Cursor())

	step(t, e, MoveDown)
	step(t, e, SelectPlayer)
	e.Seed(func() *uint64 { s := uint64(42); return &s }())

	s := e.Reset()
	assert.Equal(t, "0", s.Hash())
	assert.Equal(t, 0, e.Placed())
	assert.Equal(t, []float64{0}, s.Observation())
}

func TestMovementWithinBounds(t *testing.T) {
	tests := []struct {
		action types.Action
		row    int
		col    int
	}{
		{MoveDown, 1, 0},
		{MoveRight, 0, 1},
	}
	for _, tt := range tests {
		e := NewTeamCreatorEnvironment()
		e.Reset()
		r := step(t, e, tt.action)
		assert.Equal(t, StepReward, r.Reward)
		assert.False(t, r.Done)
		pos := r.State.(Position)
		assert.Equal(t, tt.row, pos.Row)
		assert.Equal(t, tt.col, pos.Col)
	}
}

func TestMovementOutsideBoard(t *testing.T) {
	for _, a := range []types.Action{MoveUp, MoveLeft} {
		e := NewTeamCreatorEnvironment()
		e.Reset()
		r := step(t, e, a)
		assert.Equal(t, OutsideReward, r.Reward)
		assert.Equal(t, Position{}, r.State)
	}

	e := NewTeamCreatorEnvironment()
	e.Reset()
	for i := 0; i < Rows-1; i++ {
		step(t, e, MoveDown)
	}
	r := step(t, e, MoveDown)
	assert.Equal(t, OutsideReward, r.Reward)
	assert.Equal(t, Rows-1, r.State.(Position).Row)
}

func TestSelectPlayer(t *testing.T) {
	e := NewTeamCreatorEnvironment()
	e.Reset()

	r := step(t, e, SelectPlayer)
	assert.Equal(t, 2.0, r.Reward)
	assert.Equal(t, 1, r.State.(Position).HasPlayer)
	assert.Equal(t, 1, e.Placed())

	// occupied cell
	r = step(t, e, SelectPlayer)
	assert.Equal(t, StepReward, r.Reward)
	assert.Equal(t, 1, e.Placed())

	step(t, e, MoveRight)
	r = step(t, e, SelectPlayer)
	assert.Equal(t, 4.0, r.Reward)

	// walking back onto a placed cell keeps the flag
	r = step(t, e, MoveLeft)
	assert.Equal(t, 1, r.State.(Position).HasPlayer)

	// not a slot
	step(t, e, MoveRight)
	step(t, e, MoveRight)
	r = step(t, e, SelectPlayer)
	assert.Equal(t, StepReward, r.Reward)
	assert.Equal(t, 0, r.State.(Position).HasPlayer)
	assert.Equal(t, 2, e.Placed())
}

func TestFullTeam(t *testing.T) {
	e := NewTeamCreatorEnvironment()
	e.Reset()
	actions := []types.Action{
		SelectPlayer, MoveRight, SelectPlayer,
		MoveDown, SelectPlayer, MoveLeft, SelectPlayer,
		MoveRight, MoveRight, SelectPlayer,
		MoveDown, SelectPlayer, MoveLeft, SelectPlayer, MoveLeft, SelectPlayer,
		MoveDown, SelectPlayer, MoveUp,
		MoveRight, MoveRight, MoveRight, SelectPlayer,
	}
	for _, a := range actions {
		r := step(t, e, a)
		require.False(t, r.Done)
	}
	assert.Equal(t, TargetPlayers-1, e.Placed())

	step(t, e, MoveRight)
	r := step(t, e, SelectPlayer)
	assert.True(t, r.Done)
	assert.Equal(t, CompleteReward, r.Reward)
	assert.Equal(t, TargetPlayers, e.Placed())
}

func TestInvalidAction(t *testing.T) {
	e := NewTeamCreatorEnvironment()
	e.Reset()
	_, err := e.Step(NumActions)
	assert.ErrorIs(t, err, types.ErrInvalidAction)
	assert.Equal(t, Position{}, e.Cursor())
}

func TestRender(t *testing.T) {
	e := NewTeamCreatorEnvironment()
	e.Reset()

	out := new(bytes.Buffer)
	require.NoError(t, e.Render(out))
	assert.Contains(t, out.String(), "\x1b[43m-\x1b[0m")

	step(t, e, MoveDown)
	out.Reset()
	require.NoError(t, e.Render(out))
	assert.Contains(t, out.String(), "(Down)")
	assert.Contains(t, out.String(), "  (1),  (0)  (0)\n")
}
