// Package grid implements the team creator environment: a cursor walks a
// small board and places players on the slot cells it stands on.
package grid

import (
	"fmt"
	"strconv"

	"github.com/zeu5/player-selector/types"
	"gonum.org/v1/gonum/stat/sampleuv"
	"golang.org/x/exp/rand"
)

const (
	NumStates  = 100
	NumActions = 5

	// TargetPlayers placed ends the episode
	TargetPlayers = 11

	StepReward     = -1.0
	OutsideReward  = -10.0
	CompleteReward = 1000.0
)

const (
	MoveDown types.Action = iota
	MoveUp
	MoveRight
	MoveLeft
	SelectPlayer
)

var actionNames = []string{"Down", "Up", "Right", "Left", "Player"}

// ActionName returns the display name of a grid action
func ActionName(a types.Action) string {
	if a < 0 || int(a) >= len(actionNames) {
		return strconv.Itoa(int(a))
	}
	return actionNames[a]
}

// Position of the cursor, Hash is the encoded state id
type Position struct {
	Row       int
	Col       int
	HasPlayer int
}

var _ types.State = Position{}

func PositionFromState(s int) Position {
	row, col, hasPlayer := Decode(s)
	return Position{Row: row, Col: col, HasPlayer: hasPlayer}
}

func (p Position) Encode() int {
	return Encode(p.Row, p.Col, p.HasPlayer)
}

func (p Position) Hash() string {
	return strconv.Itoa(p.Encode())
}

func (p Position) Actions() []types.Action {
	return types.ActionRange(NumActions)
}

func (p Position) Observation() []float64 {
	return []float64{float64(p.Encode())}
}

type TeamCreatorEnvironment struct {
	board      board
	maxRow     int
	maxCol     int
	isd        []float64
	rand       *rand.Rand
	cur        Position
	placed     int
	lastAction *types.Action
}

var _ types.Environment = &TeamCreatorEnvironment{}
var _ types.Renderer = &TeamCreatorEnvironment{}

func NewTeamCreatorEnvironment() *TeamCreatorEnvironment {
	e := &TeamCreatorEnvironment{
		board:  newBoard(),
		maxRow: Rows - 1,
		maxCol: Columns - 1,
		isd:    make([]float64, NumStates),
	}
	e.Seed(nil)
	e.cur = PositionFromState(e.sampleInitial())
	return e
}

func (e *TeamCreatorEnvironment) Seed(seed *uint64) []uint64 {
	r, used := types.NewRand(seed)
	e.rand = r
	return []uint64{used}
}

// sampleInitial draws from the initial state distribution. The distribution
// carries no mass, so the first state is always picked.
func (e *TeamCreatorEnvironment) sampleInitial() int {
	i, ok := sampleuv.NewWeighted(e.isd, e.rand).Take()
	if !ok {
		return 0
	}
	return i
}

func (e *TeamCreatorEnvironment) Reset() types.State {
	e.Seed(nil)
	e.isd = make([]float64, NumStates)
	e.cur = PositionFromState(e.sampleInitial())
	e.lastAction = nil
	e.board = newBoard()
	e.placed = 0
	return e.cur
}

func (e *TeamCreatorEnvironment) Step(a types.Action) (*types.StepResult, error) {
	if !e.ActionSpace().ContainsAction(a) {
		return nil, fmt.Errorf("team creator: action %d: %w", a, types.ErrInvalidAction)
	}
	row, col, hasPlayer := e.cur.Row, e.cur.Col, e.cur.HasPlayer
	reward := StepReward
	done := false

	switch a {
	case MoveDown:
		if row < e.maxRow {
			row += 1
		} else {
			reward = OutsideReward
		}
	case MoveUp:
		if row > 0 {
			row -= 1
		} else {
			reward = OutsideReward
		}
	case MoveRight:
		if col < e.maxCol {
			col += 1
		} else {
			reward = OutsideReward
		}
	case MoveLeft:
		if col > 0 {
			col -= 1
		} else {
			reward = OutsideReward
		}
	case SelectPlayer:
		if e.board.cell(row, col) == Slot {
			e.board.set(row, col, Placed)
			e.placed += 1
			reward = 2 * float64(e.placed)
			hasPlayer = 1
		}
	}

	if a != SelectPlayer {
		if e.board.cell(row, col) == Placed {
			hasPlayer = 1
		} else {
			hasPlayer = 0
		}
	}

	if e.placed == TargetPlayers {
		done = true
		reward = CompleteReward
	}

	e.cur = Position{Row: row, Col: col, HasPlayer: hasPlayer}
	e.lastAction = &a
	return &types.StepResult{
		State:  e.cur,
		Reward: reward,
		Done:   done,
		Info:   types.Info{},
	}, nil
}

// Placed is the number of players on the board
func (e *TeamCreatorEnvironment) Placed() int {
	return e.placed
}

func (e *TeamCreatorEnvironment) Cursor() Position {
	return e.cur
}

func (e *TeamCreatorEnvironment) ActionSpace() types.Discrete {
	return types.Discrete{N: NumActions}
}

func (e *TeamCreatorEnvironment) ObservationSpace() types.Space {
	return types.Discrete{N: NumStates}
}
