// Package formation implements the player selector for a 4-3-3 formation:
// eleven distinct players within the budget, respecting per-position quotas.
package formation

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
	MaxScore      = 10000.0

	// IgnoredReward is returned for duplicates and full positions
	IgnoredReward     = 0.0
	OverBudgetPenalty = -1000.0
	CompleteBonus     = 500.0
)

// DefaultCataloguePath is resolved against the working directory
const DefaultCataloguePath = "playerselector3_players.csv"

// SelectedKey holds the selected player names in the step info
const SelectedKey = "selected"

// State is the observation
// (players, goalkeepers, defenders, midfielders, attackers, budget, score)
type State struct {
	Selected  int
	Positions Counts
	Budget    float64
	Score     float64

	numActions int
}

var _ types.State = State{}

func (s State) Hash() string {
	return fmt.Sprintf("(%d, %d, %d, %d, %d, %g, %g)", s.Selected,
		s.Positions.Goalkeepers, s.Positions.Defenders, s.Positions.Midfielders, s.Positions.Attackers,
		s.Budget, s.Score)
}

func (s State) Actions() []types.Action {
	return types.ActionRange(s.numActions)
}

func (s State) Observation() []float64 {
	return []float64{
		float64(s.Selected),
		float64(s.Positions.Goalkeepers),
		float64(s.Positions.Defenders),
		float64(s.Positions.Midfielders),
		float64(s.Positions.Attackers),
		s.Budget,
		s.Score,
	}
}

type PlayerSelector3Environment struct {
	players    *catalogue.Catalogue
	state      State
	selected   map[string]bool
	roster     []catalogue.Player
	lastAction *types.Action
	rand       *rand.Rand
}

var _ types.Environment = &PlayerSelector3Environment{}
var _ types.Renderer = &PlayerSelector3Environment{}

func NewPlayerSelector3Environment(loader catalogue.Loader) (*PlayerSelector3Environment, error) {
	players, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("player selector 3: %w", err)
	}
	return NewWithCatalogue(players)
}

// NewWithCatalogue shares an already loaded catalogue, every player must
// carry one of the four position tags
func NewWithCatalogue(players *catalogue.Catalogue) (*PlayerSelector3Environment, error) {
	for _, p := range players.Players() {
		if _, ok := Quota[p.Position]; !ok {
			return nil, fmt.Errorf("player selector 3: player %d (%s) position %q: %w",
				p.ID, p.Name, p.Position, catalogue.ErrMalformedCatalogue)
		}
	}
	e := &PlayerSelector3Environment{players: players}
	e.Seed(nil)
	e.clear()
	return e, nil
}

func (e *PlayerSelector3Environment) initialState() State {
	return State{Budget: InitialBudget, numActions: e.players.Len()}
}

func (e *PlayerSelector3Environment) clear() {
	e.state = e.initialState()
	e.selected = make(map[string]bool)
	e.roster = make([]catalogue.Player, 0, RosterSize)
	e.lastAction = nil
}

func (e *PlayerSelector3Environment) Seed(seed *uint64) []uint64 {
	r, used := types.NewRand(seed)
	e.rand = r
	return []uint64{used}
}

func (e *PlayerSelector3Environment) Reset() types.State {
	e.Seed(nil)
	e.clear()
	return e.state
}

func (e *PlayerSelector3Environment) Step(a types.Action) (*types.StepResult, error) {
	player, ok := e.players.Lookup(int(a))
	if !ok {
		return nil, fmt.Errorf("player selector 3: action %d of %d: %w", a, e.players.Len(), types.ErrInvalidAction)
	}
	e.lastAction = &a

	if e.selected[player.Name] || e.state.Positions.Full(player.Position) {
		return e.result(IgnoredReward, false), nil
	}
	e.selected[player.Name] = true
	e.roster = append(e.roster, player)

	reward := player.Score
	done := false
	next := State{
		Selected:   len(e.roster),
		Positions:  e.state.Positions.Add(player.Position),
		Budget:     e.state.Budget - player.Price,
		Score:      e.state.Score + player.Score,
		numActions: e.state.numActions,
	}

	if next.Budget < 0 {
		done = true
		reward = OverBudgetPenalty
	} else if next.Selected == RosterSize {
		done = true
		reward = CompleteBonus
	}

	e.state = next
	return e.result(reward, done), nil
}

func (e *PlayerSelector3Environment) result(reward float64, done bool) *types.StepResult {
	return &types.StepResult{
		State:  e.state,
		Reward: reward,
		Done:   done,
		Info:   types.Info{SelectedKey: e.SelectedNames()},
	}
}

// SelectedNames in selection order
func (e *PlayerSelector3Environment) SelectedNames() []string {
	names := make([]string, len(e.roster))
	for i, p := range e.roster {
		names[i] = p.Name
	}
	return names
}

func (e *PlayerSelector3Environment) State() State {
	return e.state
}

func (e *PlayerSelector3Environment) Roster() []catalogue.Player {
	return append([]catalogue.Player{}, e.roster...)
}

func (e *PlayerSelector3Environment) ActionSpace() types.Discrete {
	return types.Discrete{N: e.players.Len()}
}

func (e *PlayerSelector3Environment) ObservationSpace() types.Space {
	return types.SymmetricBox(
		RosterSize,
		float64(Quota[catalogue.Goalkeeper]),
		float64(Quota[catalogue.Defender]),
		float64(Quota[catalogue.Midfielder]),
		float64(Quota[catalogue.Attacker]),
		InitialBudget,
		MaxScore,
	)
}

// Render prints the selected players by name with the formation counts
func (e *PlayerSelector3Environment) Render(w io.Writer) error {
	last := "  (none)"
	if e.lastAction != nil {
		p, _ := e.players.Lookup(int(*e.lastAction))
		last = fmt.Sprintf("  (%d: %s, %s)", *e.lastAction, p.Name, p.Position)
	}
	c := e.state.Positions
	return catalogue.WriteRoster(w, e.roster,
		fmt.Sprintf("GK %d/%d  DF %d/%d  MF %d/%d  ST %d/%d",
			c.Goalkeepers, Quota[catalogue.Goalkeeper],
			c.Defenders, Quota[catalogue.Defender],
			c.Midfielders, Quota[catalogue.Midfielder],
			c.Attackers, Quota[catalogue.Attacker]),
		fmt.Sprintf("budget %g, score %g, players %d/%d", e.state.Budget, e.state.Score, e.state.Selected, RosterSize),
		last,
	)
}
