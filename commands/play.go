package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeu5/player-selector/types"
)

// PlayCommand steps an environment through the given actions, rendering each step
func PlayCommand(v *viper.Viper) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "play <env-id> <action>...",
		Short: "Play a fixed sequence of actions",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			registry, err := registryFor(cfg)
			if err != nil {
				return err
			}
			env, err := registry.Make(args[0])
			if err != nil {
				return err
			}
			actions := make([]types.Action, 0, len(args)-1)
			for _, a := range args[1:] {
				id, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("action %q: %w", a, err)
				}
				actions = append(actions, types.Action(id))
			}
			if cmd.Flags().Changed("seed") {
				s := uint64(seed)
				env.Seed(&s)
			}
			return play(cmd.OutOrStdout(), env, actions)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed of the environment")
	return cmd
}

func play(w io.Writer, env types.Environment, actions []types.Action) error {
	agent := types.NewAgent(&types.AgentConfig{
		Episodes:    1,
		Horizon:     len(actions),
		Policy:      types.NewSequencePolicy(actions...),
		Environment: &renderingEnv{Environment: env, w: w},
	})
	trace, err := agent.RunEpisode(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "steps: %d return: %g done: %t\n", trace.Len(), trace.Return(), trace.Done())
	return nil
}

// renderingEnv draws the environment after every reset and step
type renderingEnv struct {
	types.Environment
	w io.Writer
}

func (r *renderingEnv) Reset() types.State {
	s := r.Environment.Reset()
	r.render()
	return s
}

func (r *renderingEnv) Step(a types.Action) (*types.StepResult, error) {
	res, err := r.Environment.Step(a)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(r.w, "action: %d reward: %g done: %t\n", a, res.Reward, res.Done)
	r.render()
	return res, nil
}

func (r *renderingEnv) render() {
	if renderer, ok := r.Environment.(types.Renderer); ok {
		renderer.Render(r.w)
	}
}
