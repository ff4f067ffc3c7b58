package types

import "strconv"

// countdownState counts the remaining steps
type countdownState int

func (c countdownState) Hash() string           { return strconv.Itoa(int(c)) }
func (c countdownState) Actions() []Action      { return ActionRange(2) }
func (c countdownState) Observation() []float64 { return []float64{float64(c)} }

// countdownEnv ends after start steps, action 1 rewards 1 and action 0 nothing
type countdownEnv struct {
	start int
	left  int
}

func (c *countdownEnv) Reset() State {
	c.left = c.start
	return countdownState(c.left)
}

func (c *countdownEnv) Step(a Action) (*StepResult, error) {
	if !c.ActionSpace().ContainsAction(a) {
		return nil, ErrInvalidAction
	}
	c.left -= 1
	return &StepResult{
		State:  countdownState(c.left),
		Reward: float64(a),
		Done:   c.left == 0,
		Info:   Info{},
	}, nil
}

func (c *countdownEnv) Seed(seed *uint64) []uint64 {
	_, s := NewRand(seed)
	return []uint64{s}
}

func (c *countdownEnv) ActionSpace() Discrete   { return Discrete{N: 2} }
func (c *countdownEnv) ObservationSpace() Space { return Box{Low: []float64{0}, High: []float64{float64(c.start)}} }
