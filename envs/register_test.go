package envs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/player-selector/catalogue"
	"github.com/zeu5/player-selector/types"
)

func testOptions() Options {
	return Options{
		Selector2Catalogue: &catalogue.CSVLoader{Path: "../data/playerselector2_players.csv", Format: catalogue.CommaFormat},
		Selector3Catalogue: &catalogue.CSVLoader{Path: "../data/playerselector3_players.csv", Format: catalogue.FormationFormat},
	}
}

func TestRegistryIDs(t *testing.T) {
	r, err := NewRegistry(testOptions())
	require.NoError(t, err)

	ids := make([]string, 0)
	for _, s := range r.Specs() {
		ids = append(ids, s.ID)
		assert.Equal(t, MaxEpisodeSteps, s.MaxEpisodeSteps)
	}
	assert.Equal(t, []string{PlayerSelector, PlayerSelector2, PlayerSelector3, TeamCreator}, ids)
}

func TestMakeEveryVariant(t *testing.T) {
	r, err := NewRegistry(testOptions())
	require.NoError(t, err)

	for _, s := range r.Specs() {
		env, err := r.Make(s.ID)
		require.NoError(t, err, s.ID)
		state := env.Reset()
		assert.True(t, env.ObservationSpace().Contains(state.Observation()), s.ID)
		assert.Len(t, state.Actions(), env.ActionSpace().N, s.ID)
	}
}

func TestStepLimit(t *testing.T) {
	r, err := NewRegistry(testOptions())
	require.NoError(t, err)
	env, err := r.Make(TeamCreator)
	require.NoError(t, err)

	env.Reset()
	for i := 0; i < MaxEpisodeSteps-1; i++ {
		res, err := env.Step(1)
		require.NoError(t, err)
		require.False(t, res.Done)
	}
	res, err := env.Step(1)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, true, res.Info[types.TruncatedKey])
}

func TestMissingCatalogue(t *testing.T) {
	r, err := NewRegistry(Options{
		Selector2Catalogue: &catalogue.CSVLoader{Path: "missing.csv", Format: catalogue.CommaFormat},
		Selector3Catalogue: catalogue.StaticLoader{},
	})
	require.NoError(t, err)

	_, err = r.Make(PlayerSelector2)
	assert.Error(t, err)
	_, err = r.Make(PlayerSelector3)
	assert.ErrorIs(t, err, catalogue.ErrEmptyCatalogue)

	_, err = r.Make(PlayerSelector)
	assert.NoError(t, err)
}

func TestDuplicateRegistration(t *testing.T) {
	r, err := NewRegistry(testOptions())
	require.NoError(t, err)
	assert.ErrorIs(t, Register(r, testOptions()), types.ErrDuplicateEnvironment)
}
