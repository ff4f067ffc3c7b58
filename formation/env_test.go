package formation

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/player-selector/catalogue"
	"github.com/zeu5/player-selector/types"
)

const (
	firstGK = 0
	firstDF = 2
	firstMF = 7
	firstST = 11
	richST  = 15
)

// two goalkeepers, five defenders, four midfielders and four attackers
// costing 50 and scoring 10 each, plus an unaffordable attacker
func fixture() catalogue.StaticLoader {
	players := make(catalogue.StaticLoader, 0)
	add := func(pos catalogue.Position, n int) {
		for i := 0; i < n; i++ {
			players = append(players, catalogue.Player{
				Name:     fmt.Sprintf("%s-%d", pos, i),
				Position: pos,
				Price:    50,
				Score:    10,
			})
		}
	}
	add(catalogue.Goalkeeper, 2)
	add(catalogue.Defender, 5)
	add(catalogue.Midfielder, 4)
	add(catalogue.Attacker, 4)
	players = append(players, catalogue.Player{Name: "rich", Position: catalogue.Attacker, Price: 2000, Score: 500})
	return players
}

func newEnv(t *testing.T) *PlayerSelector3Environment {
	t.Helper()
	e, err := NewPlayerSelector3Environment(fixture())
	require.NoError(t, err)
	e.Reset()
	return e
}

func TestLoadFromCSV(t *testing.T) {
	e, err := NewPlayerSelector3Environment(&catalogue.CSVLoader{
		Path:   "../data/playerselector3_players.csv",
		Format: catalogue.FormationFormat,
	})
	require.NoError(t, err)
	assert.Equal(t, 43, e.ActionSpace().N)
}

func TestUnknownPosition(t *testing.T) {
	_, err := NewPlayerSelector3Environment(catalogue.StaticLoader{{Name: "x", Position: "libero"}})
	assert.ErrorIs(t, err, catalogue.ErrMalformedCatalogue)
}

func TestCompleteFormation(t *testing.T) {
	e := newEnv(t)
	actions := []types.Action{firstGK}
	for i := 0; i < 4; i++ {
		actions = append(actions, types.Action(firstDF+i))
	}
	for i := 0; i < 3; i++ {
		actions = append(actions, types.Action(firstMF+i), types.Action(firstST+i))
	}
	require.Len(t, actions, RosterSize)

	var r *types.StepResult
	var err error
	for i, a := range actions {
		r, err = e.Step(a)
		require.NoError(t, err)
		if i < len(actions)-1 {
			assert.False(t, r.Done)
			assert.Equal(t, 10.0, r.Reward)
		}
	}
	assert.True(t, r.Done)
	assert.Equal(t, CompleteBonus, r.Reward)

	s := e.State()
	assert.Equal(t, Counts{Goalkeepers: 1, Defenders: 4, Midfielders: 3, Attackers: 3}, s.Positions)
	assert.Equal(t, 950.0, s.Budget)
	assert.Equal(t, 110.0, s.Score)
	assert.Len(t, r.Info[SelectedKey], RosterSize)
}

func TestFullPositionIgnored(t *testing.T) {
	e := newEnv(t)
	_, err := e.Step(firstGK)
	require.NoError(t, err)
	before := e.State()

	r, err := e.Step(firstGK + 1)
	require.NoError(t, err)
	assert.Equal(t, IgnoredReward, r.Reward)
	assert.False(t, r.Done)
	assert.Equal(t, before, e.State())
	assert.Equal(t, []string{"goalkeeper-0"}, r.Info[SelectedKey])
	assert.Equal(t, types.Action(firstGK+1), *e.lastAction)
}

func TestDefenderQuota(t *testing.T) {
	e := newEnv(t)
	for i := 0; i < 4; i++ {
		r, err := e.Step(types.Action(firstDF + i))
		require.NoError(t, err)
		require.Equal(t, 10.0, r.Reward)
	}
	before := e.State()
	r, err := e.Step(firstDF + 4)
	require.NoError(t, err)
	assert.Equal(t, IgnoredReward, r.Reward)
	assert.Equal(t, before, r.State)
}

func TestDuplicateIgnored(t *testing.T) {
	e := newEnv(t)
	_, err := e.Step(firstMF)
	require.NoError(t, err)
	before := e.State()

	r, err := e.Step(firstMF)
	require.NoError(t, err)
	assert.Equal(t, IgnoredReward, r.Reward)
	assert.False(t, r.Done)
	assert.Equal(t, before, e.State())
}

func TestOverBudget(t *testing.T) {
	e := newEnv(t)
	r, err := e.Step(richST)
	require.NoError(t, err)
	assert.True(t, r.Done)
	assert.Equal(t, OverBudgetPenalty, r.Reward)
	assert.Equal(t, 1, e.State().Positions.Attackers)
	assert.Equal(t, -500.0, e.State().Budget)
}

func TestResetRestoresInitialState(t *testing.T) {
	e := newEnv(t)
	for _, a := range []types.Action{firstGK, firstDF, richST} {
		_, err := e.Step(a)
		require.NoError(t, err)
	}
	s := e.Reset().(State)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, InitialBudget, 0}, s.Observation())
	assert.Empty(t, e.SelectedNames())
	assert.Nil(t, e.lastAction)
}

func TestInvalidActionLeavesState(t *testing.T) {
	e := newEnv(t)
	_, err := e.Step(-3)
	assert.ErrorIs(t, err, types.ErrInvalidAction)
	assert.Nil(t, e.lastAction)
}

func TestSpaces(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, 16, e.ActionSpace().N)
	box := e.ObservationSpace().(types.Box)
	assert.Equal(t, []float64{11, 1, 4, 3, 3, 1500, 10000}, box.High)
}

func TestRender(t *testing.T) {
	e := newEnv(t)
	_, err := e.Step(firstST)
	require.NoError(t, err)
	out := new(bytes.Buffer)
	require.NoError(t, e.Render(out))
	assert.Contains(t, out.String(), "ST 1/3")
	assert.Contains(t, out.String(), "attacker-0")
}
