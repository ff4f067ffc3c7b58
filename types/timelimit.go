package types

import "io"

// TruncatedKey is set in Info when the step limit ended the episode
const TruncatedKey = "TimeLimit.truncated"

// TimeLimit ends episodes after a fixed number of steps regardless of
// the wrapped environment's state
type TimeLimit struct {
	Environment
	maxSteps int
	elapsed  int
}

var _ Environment = &TimeLimit{}

func NewTimeLimit(env Environment, maxSteps int) *TimeLimit {
	return &TimeLimit{
		Environment: env,
		maxSteps:    maxSteps,
	}
}

func (t *TimeLimit) Reset() State {
	t.elapsed = 0
	return t.Environment.Reset()
}

func (t *TimeLimit) Step(a Action) (*StepResult, error) {
	result, err := t.Environment.Step(a)
	if err != nil {
		return nil, err
	}
	t.elapsed += 1
	if t.elapsed >= t.maxSteps {
		if result.Info == nil {
			result.Info = make(Info)
		}
		result.Info[TruncatedKey] = !result.Done
		result.Done = true
	}
	return result, nil
}

// Elapsed is the number of successful steps since the last reset
func (t *TimeLimit) Elapsed() int {
	return t.elapsed
}

func (t *TimeLimit) Unwrap() Environment {
	return t.Environment
}

func (t *TimeLimit) Render(w io.Writer) error {
	if r, ok := t.Environment.(Renderer); ok {
		return r.Render(w)
	}
	return nil
}
