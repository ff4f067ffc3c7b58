// Package fixedselect implements the player selector over a fixed table
// of ten players: pick three distinct players without exceeding the budget.
package fixedselect

import (
	"fmt"

	"github.com/zeu5/player-selector/catalogue"
	"github.com/zeu5/player-selector/types"
	"golang.org/x/exp/rand"
)

const (
	RosterSize    = 3
	InitialBudget = 115.0
	MaxScore      = 1000.0

	DuplicatePenalty  = -300.0
	OverBudgetPenalty = -1000.0
	CompleteBonus     = 500.0
)

// State is the observation (players selected, budget left, score)
type State struct {
	Selected int
	Budget   float64
	Score    float64
}

var _ types.State = State{}

func InitialState() State {
	return State{Selected: 0, Budget: InitialBudget, Score: 0}
}

func (s State) Hash() string {
	return fmt.Sprintf("(%d, %g, %g)", s.Selected, s.Budget, s.Score)
}

func (s State) Actions() []types.Action {
	return types.ActionRange(len(Players))
}

func (s State) Observation() []float64 {
	return []float64{float64(s.Selected), s.Budget, s.Score}
}

type PlayerSelectorEnvironment struct {
	players    *catalogue.Catalogue
	state      State
	selected   map[string]bool
	roster     []catalogue.Player
	lastAction *types.Action
	rand       *rand.Rand
}

var _ types.Environment = &PlayerSelectorEnvironment{}

func NewPlayerSelectorEnvironment() *PlayerSelectorEnvironment {
	players, err := Players.Load()
	if err != nil {
		// the static table is never empty
		panic(err)
	}
	e := &PlayerSelectorEnvironment{players: players}
	e.Seed(nil)
	e.clear()
	return e
}

func (e *PlayerSelectorEnvironment) clear() {
	e.state = InitialState()
	e.selected = make(map[string]bool)
	e.roster = make([]catalogue.Player, 0, RosterSize)
	e.lastAction = nil
}

// Seed reinitialises the generator, it does not affect transitions
func (e *PlayerSelectorEnvironment) Seed(seed *uint64) []uint64 {
	r, used := types.NewRand(seed)
	e.rand = r
	return []uint64{used}
}

func (e *PlayerSelectorEnvironment) Reset() types.State {
	e.Seed(nil)
	e.clear()
	return e.state
}

func (e *PlayerSelectorEnvironment) Step(a types.Action) (*types.StepResult, error) {
	player, ok := e.players.Lookup(int(a))
	if !ok {
		return nil, fmt.Errorf("player selector: action %d: %w", a, types.ErrInvalidAction)
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
		Selected: len(e.roster),
		Budget:   e.state.Budget - player.Price,
		Score:    e.state.Score + player.Score,
	}

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

func (e *PlayerSelectorEnvironment) State() State {
	return e.state
}

// Roster returns the selected players in selection order
func (e *PlayerSelectorEnvironment) Roster() []catalogue.Player {
	return append([]catalogue.Player{}, e.roster...)
}

func (e *PlayerSelectorEnvironment) ActionSpace() types.Discrete {
	return types.Discrete{N: e.players.Len()}
}

func (e *PlayerSelectorEnvironment) ObservationSpace() types.Space {
	return types.SymmetricBox(RosterSize, InitialBudget, MaxScore)
}
