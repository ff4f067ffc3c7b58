// Package csvselect implements the player selector over an externally
// loaded catalogue: pick eleven distinct players within the budget.
package csvselect

import (
	"fmt"
	"io"

	"github.com/zeu5/player-selector/catalogue"
	"github.com/zeu5/player-selector/types"
	"golang.org/x/exp/rand"
)

const (
	RosterSize    = 11
	InitialBudget = 1500.0
	MaxScore      = 3000.0

	DuplicatePenalty  = -300.0
	OverBudgetPenalty = -500.0
	CompleteBonus     = 500.0
)

// DefaultCataloguePath is resolved against the working directory
const DefaultCataloguePath = "playerselector2_players.csv"

// State is the observation (players selected, budget left, score)
type State struct {
	Selected int
	Budget   float64
	Score    float64

	numActions int
}

var _ types.State = State{}

func (s State) Hash() string {
	return fmt.Sprintf("(%d, %g, %g)", s.Selected, s.Budget, s.Score)
}

func (s State) Actions() []types.Action {
	return types.ActionRange(s.numActions)
}

func (s State) Observation() []float64 {
	return []float64{float64(s.Selected), s.Budget, s.Score}
}

type PlayerSelector2Environment struct {
	players    *catalogue.Catalogue
	state      State
	selected   map[string]bool
	roster     []catalogue.Player
	lastAction *types.Action
	rand       *rand.Rand
}

var _ types.Environment = &PlayerSelector2Environment{}
var _ types.Renderer = &PlayerSelector2Environment{}

// NewPlayerSelector2Environment loads the catalogue once, the action
// space has one action per catalogue row
func NewPlayerSelector2Environment(loader catalogue.Loader) (*PlayerSelector2Environment, error) {
	players, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("player selector 2: %w", err)
	}
	return NewWithCatalogue(players), nil
}

// NewWithCatalogue shares an already loaded catalogue
func NewWithCatalogue(players *catalogue.Catalogue) *PlayerSelector2Environment {
	e := &PlayerSelector2Environment{players: players}
	e.Seed(nil)
	e.clear()
	return e
}

func (e *PlayerSelector2Environment) initialState() State {
	return State{Selected: 0, Budget: InitialBudget, Score: 0, numActions: e.players.Len()}
}

func (e *PlayerSelector2Environment) clear() {
	e.state = e.initialState()
	e.selected = make(map[string]bool)
	e.roster = make([]catalogue.Player, 0, RosterSize)
	e.lastAction = nil
}

func (e *PlayerSelector2Environment) Seed(seed *uint64) []uint64 {
	r, used := types.NewRand(seed)
	e.rand = r
	return []uint64{used}
}

func (e *PlayerSelector2Environment) Reset() types.State {
	e.Seed(nil)
	e.clear()
	return e.state
}

func (e *PlayerSelector2Environment) Step(a types.Action) (*types.StepResult, error) {
	player, ok := e.players.Lookup(int(a))
	if !ok {
		return nil, fmt.Errorf("player selector 2: action %d of %d: %w", a, e.players.Len(), types.ErrInvalidAction)
	}

	if e.selected[player.Name] {
		e.lastAction = &a
		return &types.StepResult{State: e.state, Reward: DuplicatePenalty, Info: types.Info{}}, nil
	}
	e.selected[player.Name] = true
	e.roster = append(e.roster, player)

	reward := player.Score
	done := false
	next := State{
		Selected:   len(e.roster),
		Budget:     e.state.Budget - player.Price,
		Score:      e.state.Score + player.Score,
		numActions: e.state.numActions,
	}

	// Check done states
	if next.Budget < 0 {
		done = true
		reward = OverBudgetPenalty
	} else if next.Selected == RosterSize {
		done = true
		reward = CompleteBonus
	}

	e.state = next
	e.lastAction = &a
	return &types.StepResult{State: e.state, Reward: reward, Done: done, Info: types.Info{}}, nil
}

func (e *PlayerSelector2Environment) State() State {
	return e.state
}

func (e *PlayerSelector2Environment) Roster() []catalogue.Player {
	return append([]catalogue.Player{}, e.roster...)
}

func (e *PlayerSelector2Environment) ActionSpace() types.Discrete {
	return types.Discrete{N: e.players.Len()}
}

func (e *PlayerSelector2Environment) ObservationSpace() types.Space {
	return types.SymmetricBox(RosterSize, InitialBudget, MaxScore)
}

func (e *PlayerSelector2Environment) Render(w io.Writer) error {
	last := "  (none)"
	if e.lastAction != nil {
		p, _ := e.players.Lookup(int(*e.lastAction))
		last = fmt.Sprintf("  (%d: %s)", *e.lastAction, p.Name)
	}
	return catalogue.WriteRoster(w, e.roster,
		fmt.Sprintf("budget %g, score %g, players %d/%d", e.state.Budget, e.state.Score, e.state.Selected, RosterSize),
		last,
	)
}
