// Package envs registers the named environment variants.
package envs

import (
	"github.com/zeu5/player-selector/catalogue"
	"github.com/zeu5/player-selector/csvselect"
	"github.com/zeu5/player-selector/fixedselect"
	"github.com/zeu5/player-selector/formation"
	"github.com/zeu5/player-selector/grid"
	"github.com/zeu5/player-selector/types"
)

const (
	TeamCreator     = "TeamCreator-v0"
	PlayerSelector  = "PlayerSelector-v0"
	PlayerSelector2 = "PlayerSelector2-v0"
	PlayerSelector3 = "PlayerSelector3-v0"

	// MaxEpisodeSteps truncates every registered variant
	MaxEpisodeSteps = 200
)

// Options point the catalogue-backed variants at their sources
type Options struct {
	Selector2Catalogue catalogue.Loader
	Selector3Catalogue catalogue.Loader
}

func DefaultOptions() Options {
	return Options{
		Selector2Catalogue: &catalogue.CSVLoader{Path: csvselect.DefaultCataloguePath, Format: catalogue.CommaFormat},
		Selector3Catalogue: &catalogue.CSVLoader{Path: formation.DefaultCataloguePath, Format: catalogue.FormationFormat},
	}
}

// Register adds the four variants to the registry
func Register(r *types.Registry, opts Options) error {
	specs := []types.EnvSpec{
		{
			ID:              TeamCreator,
			MaxEpisodeSteps: MaxEpisodeSteps,
			New: func() (types.Environment, error) {
				return grid.NewTeamCreatorEnvironment(), nil
			},
		},
		{
			ID:              PlayerSelector,
			MaxEpisodeSteps: MaxEpisodeSteps,
			New: func() (types.Environment, error) {
				return fixedselect.NewPlayerSelectorEnvironment(), nil
			},
		},
		{
			ID:              PlayerSelector2,
			MaxEpisodeSteps: MaxEpisodeSteps,
			New: func() (types.Environment, error) {
				env, err := csvselect.NewPlayerSelector2Environment(opts.Selector2Catalogue)
				if err != nil {
					return nil, err
				}
				return env, nil
			},
		},
		{
			ID:              PlayerSelector3,
			MaxEpisodeSteps: MaxEpisodeSteps,
			New: func() (types.Environment, error) {
				env, err := formation.NewPlayerSelector3Environment(opts.Selector3Catalogue)
				if err != nil {
					return nil, err
				}
				return env, nil
			},
		},
	}
	for _, s := range specs {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry with the four variants
func NewRegistry(opts Options) (*types.Registry, error) {
	r := types.NewRegistry()
	if err := Register(r, opts); err != nil {
		return nil, err
	}
	return r, nil
}
