package types

// StepPredicate holds on the outcome of a transition
type StepPredicate func(*StepResult) bool

func (p StepPredicate) And(other StepPredicate) StepPredicate {
	return func(r *StepResult) bool {
		return p(r) && other(r)
	}
}

func (p StepPredicate) Or(other StepPredicate) StepPredicate {
	return func(r *StepResult) bool {
		return p(r) || other(r)
	}
}

func (p StepPredicate) Not() StepPredicate {
	return func(r *StepResult) bool {
		return !p(r)
	}
}

func IsDone() StepPredicate {
	return func(r *StepResult) bool {
		return r.Done
	}
}

// IsTruncated holds when a TimeLimit ended an unfinished episode
func IsTruncated() StepPredicate {
	return func(r *StepResult) bool {
		truncated, ok := r.Info[TruncatedKey].(bool)
		return ok && truncated
	}
}

func RewardEquals(reward float64) StepPredicate {
	return func(r *StepResult) bool {
		return r.Reward == reward
	}
}

func RewardAtLeast(reward float64) StepPredicate {
	return func(r *StepResult) bool {
		return r.Reward >= reward
	}
}
