package types

import "encoding/json"

// Trace of an episode as steps (state, action, nextState, reward, done)
type Trace struct {
	states     []State
	actions    []Action
	nextStates []State
	rewards    []float64
	dones      []bool
	infos      []Info
}

func NewTrace() *Trace {
	return &Trace{
		states:     make([]State, 0),
		actions:    make([]Action, 0),
		nextStates: make([]State, 0),
		rewards:    make([]float64, 0),
		dones:      make([]bool, 0),
		infos:      make([]Info, 0),
	}
}

func (t *Trace) Append(state State, action Action, result *StepResult) {
	t.states = append(t.states, state)
	t.actions = append(t.actions, action)
	t.nextStates = append(t.nextStates, result.State)
	t.rewards = append(t.rewards, result.Reward)
	t.dones = append(t.dones, result.Done)
	t.infos = append(t.infos, result.Info)
}

func (t *Trace) Len() int {
	return len(t.states)
}

func (t *Trace) Get(i int) (State, Action, State, bool) {
	if i < 0 || i >= len(t.states) {
		return nil, 0, nil, false
	}
	return t.states[i], t.actions[i], t.nextStates[i], true
}

// Reward of the i-th step
func (t *Trace) Reward(i int) float64 {
	if i < 0 || i >= len(t.rewards) {
		return 0
	}
	return t.rewards[i]
}

func (t *Trace) Info(i int) Info {
	if i < 0 || i >= len(t.infos) {
		return nil
	}
	return t.infos[i]
}

func (t *Trace) Last() (State, Action, State, bool) {
	return t.Get(len(t.states) - 1)
}

// Return is the undiscounted sum of rewards
func (t *Trace) Return() float64 {
	sum := 0.0
	for _, r := range t.rewards {
		sum += r
	}
	return sum
}

// Done reports whether the last step terminated the episode
func (t *Trace) Done() bool {
	if len(t.dones) == 0 {
		return false
	}
	return t.dones[len(t.dones)-1]
}

func (t *Trace) GetPrefix(i int) (*Trace, bool) {
	if i > len(t.states) {
		return nil, false
	}
	return &Trace{
		states:     t.states[0:i],
		actions:    t.actions[0:i],
		nextStates: t.nextStates[0:i],
		rewards:    t.rewards[0:i],
		dones:      t.dones[0:i],
		infos:      t.infos[0:i],
	}, true
}

type traceStep struct {
	State       string    `json:"state"`
	Observation []float64 `json:"observation"`
	Action      int       `json:"action"`
	NextState   string    `json:"next_state"`
	Reward      float64   `json:"reward"`
	Done        bool      `json:"done"`
}

func (t *Trace) MarshalJSON() ([]byte, error) {
	steps := make([]traceStep, t.Len())
	for i := range t.states {
		steps[i] = traceStep{
			State:       t.states[i].Hash(),
			Observation: t.states[i].Observation(),
			Action:      int(t.actions[i]),
			NextState:   t.nextStates[i].Hash(),
			Reward:      t.rewards[i],
			Done:        t.dones[i],
		}
	}
	return json.Marshal(steps)
}
