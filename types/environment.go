package types

import (
	"errors"
	"io"
	"strconv"
)

// ErrInvalidAction is returned by Step when the action id does not address
// the environment's action space. The episode state is left untouched.
var ErrInvalidAction = errors.New("invalid action")

// Environment is a single episode's state machine, advanced one step at a time
// by the caller. Instances are not safe for concurrent use.
type Environment interface {
	// Reset reinitialises the episode state and returns the initial state
	Reset() State
	// Step applies the action and returns the transition
	Step(Action) (*StepResult, error)
	// Seed (re)initialises the random generator, nil picks a fresh seed
	Seed(*uint64) []uint64
	// ActionSpace and ObservationSpace are metadata for the host,
	// observations are never clamped to them
	ActionSpace() Discrete
	ObservationSpace() Space
}

// Renderer is implemented by environments that can draw themselves
type Renderer interface {
	Render(io.Writer) error
}

// State of the system that RL policies observe
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Actions possible from the state
	Actions() []Action
	// Observation vector as declared by the observation space
	Observation() []float64
}

// Action is an integer selector, its meaning depends on the environment
type Action int

func (a Action) Hash() string {
	return strconv.Itoa(int(a))
}

// Info is an auxiliary payload returned by Step, not to be used for control
type Info map[string]interface{}

// StepResult is the outcome of a single transition
type StepResult struct {
	State  State
	Reward float64
	Done   bool
	Info   Info
}

// ActionRange returns the actions 0..n-1
func ActionRange(n int) []Action {
	actions := make([]Action, n)
	for i := 0; i < n; i++ {
		actions[i] = Action(i)
	}
	return actions
}
