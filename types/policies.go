package types

import (
	"golang.org/x/exp/rand"
)

// Policy picks the next action, it is used to drive rollouts
type Policy interface {
	UpdateIteration(int, *Trace)
	NextAction(int, State, []Action) (Action, bool)
	Update(int, State, Action, *StepResult)
	Reset()
}

// RandomPolicy picks uniformly among the available actions
type RandomPolicy struct {
	rand *rand.Rand
}

var _ Policy = &RandomPolicy{}

// NewRandomPolicy creates a random policy, nil seed picks a fresh one
func NewRandomPolicy(seed *uint64) *RandomPolicy {
	r, _ := NewRand(seed)
	return &RandomPolicy{
		rand: r,
	}
}

func (r *RandomPolicy) Reset() {

}

func (r *RandomPolicy) UpdateIteration(_ int, _ *Trace) {

}

func (r *RandomPolicy) NextAction(step int, state State, actions []Action) (Action, bool) {
	if len(actions) == 0 {
		return 0, false
	}
	i := r.rand.Intn(len(actions))
	return actions[i], true
}

func (r *RandomPolicy) Update(_ int, _ State, _ Action, _ *StepResult) {}

// SequencePolicy replays a fixed list of actions, one per step
type SequencePolicy struct {
	actions []Action
}

var _ Policy = &SequencePolicy{}

func NewSequencePolicy(actions ...Action) *SequencePolicy {
	return &SequencePolicy{actions: actions}
}

func (s *SequencePolicy) Reset() {}

func (s *SequencePolicy) UpdateIteration(_ int, _ *Trace) {}

// NextAction ignores the available actions, out of range ids are
// left to the environment to reject
func (s *SequencePolicy) NextAction(step int, _ State, _ []Action) (Action, bool) {
	if step >= len(s.actions) {
		return 0, false
	}
	return s.actions[step], true
}

func (s *SequencePolicy) Update(_ int, _ State, _ Action, _ *StepResult) {}
