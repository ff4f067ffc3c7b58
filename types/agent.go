package types

import "fmt"

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
}

// Agent drives an environment with a policy and records the traces
type Agent struct {
	config *AgentConfig
	// collects the traces of the run
	// Only populated if the Run function is invoked
	traces      []*Trace
	policy      Policy
	environment Environment
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		traces:      make([]*Trace, 0, config.Episodes),
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Run the agent for the specified number of episodes and horizon
func (a *Agent) Run() error {
	for i := 0; i < a.config.Episodes; i++ {
		trace, err := a.RunEpisode(i)
		if err != nil {
			return err
		}
		a.traces = append(a.traces, trace)
	}
	return nil
}

func (a *Agent) Traces() []*Trace {
	return a.traces
}

// RunEpisode runs a single episode and returns the resulting trace.
// The episode ends when the environment is done, the policy has
// no action or the horizon is reached.
func (a *Agent) RunEpisode(episode int) (*Trace, error) {
	state := a.environment.Reset()
	trace := NewTrace()
	actions := state.Actions()

	for i := 0; i < a.config.Horizon; i++ {
		if len(actions) == 0 {
			break
		}
		nextAction, ok := a.policy.NextAction(i, state, actions)
		if !ok {
			break
		}
		result, err := a.environment.Step(nextAction)
		if err != nil {
			return trace, fmt.Errorf("episode %d step %d: %w", episode, i, err)
		}
		a.policy.Update(i, state, nextAction, result)

		trace.Append(state, nextAction, result)
		if result.Done {
			break
		}
		state = result.State
		actions = state.Actions()
	}
	a.policy.UpdateIteration(episode, trace)

	return trace, nil
}
