package commands

import (
	"path"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeu5/player-selector/config"
	"github.com/zeu5/player-selector/store"
	"github.com/zeu5/player-selector/types"
)

// every variant rewards a finished roster with at least this much
const completionReward = 500

// RolloutCommand runs random policies against the named environments and
// compares their returns
func RolloutCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollout [env-id]...",
		Short: "Roll out random policies, all environments when none is named",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			ctx, stop := interruptContext()
			defer stop()

			c, closeStore, err := newRollout(cfg, args)
			if err != nil {
				return err
			}
			defer closeStore()
			return c.Run(ctx)
		},
	}
	cmd.Flags().String("record", "", "Record traces to \"file\" or \"redis\"")
	cmd.Flags().String("redis-addr", "127.0.0.1:6379", "Redis address used when recording to redis")
	cmd.Flags().Int("log-every", 100, "Log progress every so many episodes")
	for _, name := range []string{"record", "redis-addr", "log-every"} {
		_ = v.BindPFlag(flagKey(name), cmd.Flags().Lookup(name))
	}
	return cmd
}

func newRollout(cfg *config.Config, ids []string) (*types.Comparison, func(), error) {
	logger := cfg.Logger()
	registry, err := registryFor(cfg)
	if err != nil {
		return nil, nil, err
	}
	if len(ids) == 0 {
		for _, spec := range registry.Specs() {
			ids = append(ids, spec.ID)
		}
	}

	var recorder store.TraceStore
	switch cfg.Record {
	case "file":
		recorder = store.NewFileStore(cfg.SavePath)
	case "redis":
		recorder = store.NewRedisStore(cfg.RedisAddr, cfg.RedisPrefix)
	}
	closeStore := func() {
		if recorder != nil {
			if err := recorder.Close(); err != nil {
				logger.WithError(err).Warn("failed to close trace store")
			}
		}
	}

	cCfg := &types.ComparisonConfig{
		Runs:       cfg.Runs,
		Episodes:   cfg.Episodes,
		Horizon:    cfg.Horizon,
		RecordPath: cfg.SavePath,
		Logger:     logger,
		LogEvery:   cfg.LogEvery,
	}
	if recorder != nil {
		cCfg.Recorder = recorder
	}
	c := types.NewComparison(cCfg)
	c.AddAnalysis("return", types.NewReturnAnalyzer(), func(run int, names []string, ds []types.DataSet) {
		types.SummaryComparator(logger, "return")(run, names, ds)
		types.ReturnPlotter(path.Join(cfg.SavePath, "plots"), "return", logger)(run, names, ds)
	})
	c.AddAnalysis("length", types.NewLengthAnalyzer(), types.SummaryComparator(logger, "length"))
	c.AddAnalysis("outcome", types.NewOutcomeAnalyzer(map[string]types.StepPredicate{
		"completed":  types.RewardAtLeast(completionReward),
		"truncated":  types.IsTruncated(),
		"terminated": types.IsDone().And(types.IsTruncated().Not()),
	}), types.OutcomeComparator(logger))

	for _, id := range ids {
		env, err := registry.Make(id)
		if err != nil {
			closeStore()
			return nil, nil, err
		}
		c.AddExperiment(types.NewExperiment(id, types.NewRandomPolicy(nil), env))
	}
	return c, closeStore, nil
}
