package fixedselect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/player-selector/types"
)

func TestBestRoster(t *testing.T) {
	orders := [][]types.Action{
		{8, 1, 3},
		{3, 8, 1},
		{1, 3, 8},
	}
	for _, order := range orders {
		e := NewPlayerSelectorEnvironment()
		e.Reset()
		scoreRewards := 0.0
		for i, a := range order {
			r, err := e.Step(a)
			require.NoError(t, err)
			if i < len(order)-1 {
				assert.False(t, r.Done)
				scoreRewards += r.Reward
			} else {
				assert.True(t, r.Done)
				assert.Equal(t, CompleteBonus, r.Reward)
			}
		}
		s := e.State()
		assert.Equal(t, 5.0, s.Budget)
		assert.Equal(t, 597.0, s.Score)
		assert.Equal(t, RosterSize, s.Selected)
		last, _ := e.players.Lookup(int(order[2]))
		assert.Equal(t, 597.0, scoreRewards+last.Score)
	}
}

func TestDuplicateSelection(t *testing.T) {
	e := NewPlayerSelectorEnvironment()
	e.Reset()
	r, err := e.Step(1)
	require.NoError(t, err)
	assert.Equal(t, 289.0, r.Reward)
	before := e.State()

	r, err = e.Step(1)
	require.NoError(t, err)
	assert.Equal(t, DuplicatePenalty, r.Reward)
	assert.False(t, r.Done)
	assert.Equal(t, before, r.State)
	assert.Equal(t, before, e.State())
	assert.Len(t, e.Roster(), 1)
}

func TestOverBudget(t *testing.T) {
	e := NewPlayerSelectorEnvironment()
	e.Reset()
	// E (90) then A (80) leaves 115-170 = -55
	_, err := e.Step(4)
	require.NoError(t, err)
	r, err := e.Step(0)
	require.NoError(t, err)
	assert.True(t, r.Done)
	assert.Equal(t, OverBudgetPenalty, r.Reward)
	assert.Equal(t, State{Selected: 2, Budget: -55, Score: 298}, r.State)
}

func TestOverBudgetBeatsCompletion(t *testing.T) {
	e := NewPlayerSelectorEnvironment()
	e.Reset()
	// D (25), F (30), H (85): third pick completes and overspends
	for _, a := range []types.Action{3, 5} {
		r, err := e.Step(a)
		require.NoError(t, err)
		require.False(t, r.Done)
	}
	r, err := e.Step(7)
	require.NoError(t, err)
	assert.True(t, r.Done)
	assert.Equal(t, OverBudgetPenalty, r.Reward)
	assert.Equal(t, RosterSize, r.State.(State).Selected)
	assert.Equal(t, -25.0, r.State.(State).Budget)
}

func TestResetRestoresInitialState(t *testing.T) {
	e := NewPlayerSelectorEnvironment()
	e.Reset()
	for _, a := range []types.Action{1, 1, 2} {
		_, err := e.Step(a)
		require.NoError(t, err)
	}
	s := e.Reset()
	assert.Equal(t, InitialState(), s)
	assert.Empty(t, e.Roster())

	// previously selected players are selectable again
	r, err := e.Step(1)
	require.NoError(t, err)
	assert.Equal(t, 289.0, r.Reward)
}

func TestInvalidAction(t *testing.T) {
	e := NewPlayerSelectorEnvironment()
	e.Reset()
	for _, a := range []types.Action{-1, 10} {
		_, err := e.Step(a)
		assert.ErrorIs(t, err, types.ErrInvalidAction)
	}
	assert.Equal(t, InitialState(), e.State())
	assert.Nil(t, e.lastAction)
}

func TestSpaces(t *testing.T) {
	e := NewPlayerSelectorEnvironment()
	assert.Equal(t, 10, e.ActionSpace().N)
	assert.True(t, e.ObservationSpace().Contains(InitialState().Observation()))
	assert.Equal(t, []int{3}, e.ObservationSpace().Shape())
}

func TestRender(t *testing.T) {
	e := NewPlayerSelectorEnvironment()
	e.Reset()
	_, err := e.Step(8)
	require.NoError(t, err)

	out := new(bytes.Buffer)
	require.NoError(t, e.Render(out))
	assert.Contains(t, out.String(), "budget 80, score 293, players 1/3")
	assert.Contains(t, out.String(), "(8: I)")
}
