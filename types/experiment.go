package types

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/zeu5/player-selector/util"
)

// TraceRecorder persists the traces of an experiment
type TraceRecorder interface {
	Record(ctx context.Context, experiment string, run, episode int, trace *Trace) error
}

type experimentRunConfig struct {
	CurrentRun int
	Episodes   int
	Horizon    int
	Analyzers  []Analyzer
	Context    context.Context
	Recorder   TraceRecorder
	Logger     logrus.FieldLogger

	// progress is logged every LogEvery episodes, 0 disables it
	LogEvery int
	// abort after this many consecutive failing episodes
	ConsecutiveErrorsAbort int
}

// Experiment encapsulates the different parameters to configure an agent and analyze the traces
type Experiment struct {
	Name        string
	policy      Policy
	environment Environment
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, policy Policy, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		policy:      policy,
		environment: environment,
	}
}

// Run the experiment for the specified number of episodes, every trace is
// handed to the analyzers and the recorder
func (e *Experiment) Run(rConfig *experimentRunConfig) error {
	log := rConfig.Logger.WithFields(logrus.Fields{
		"experiment": e.Name,
		"run":        rConfig.CurrentRun,
	})
	agent := NewAgent(&AgentConfig{
		Episodes:    rConfig.Episodes,
		Horizon:     rConfig.Horizon,
		Policy:      e.policy,
		Environment: e.environment,
	})

	totalErrors := 0
	consecutiveErrors := 0
	totalDone := 0
	totalReturn := 0.0

	for episode := 0; episode < rConfig.Episodes; episode++ {
		select {
		case <-rConfig.Context.Done():
			return rConfig.Context.Err()
		default:
		}

		trace, err := agent.RunEpisode(episode)
		if err != nil {
			totalErrors += 1
			consecutiveErrors += 1
			log.WithError(err).WithField("episode", episode).Warn("episode failed")
			if consecutiveErrors >= rConfig.ConsecutiveErrorsAbort {
				return fmt.Errorf("experiment %s: %d consecutive failing episodes: %w", e.Name, consecutiveErrors, err)
			}
			continue
		}
		consecutiveErrors = 0
		if trace.Done() {
			totalDone += 1
		}
		totalReturn += trace.Return()

		for _, a := range rConfig.Analyzers {
			a.Analyze(rConfig.CurrentRun, episode, e.Name, trace)
		}
		if rConfig.Recorder != nil {
			if err := rConfig.Recorder.Record(rConfig.Context, e.Name, rConfig.CurrentRun, episode, trace); err != nil {
				log.WithError(err).WithField("episode", episode).Error("failed to record trace")
			}
		}

		if valid := episode + 1 - totalErrors; rConfig.LogEvery > 0 && (episode+1)%rConfig.LogEvery == 0 {
			log.WithFields(logrus.Fields{
				"episodes":    episode + 1,
				"done":        totalDone,
				"errors":      totalErrors,
				"mean_return": totalReturn / float64(valid),
			}).Info("progress")
		}
	}
	log.WithFields(logrus.Fields{
		"episodes": rConfig.Episodes,
		"done":     totalDone,
		"errors":   totalErrors,
	}).Info("experiment finished")
	return nil
}

// Reset the policy between runs
func (e *Experiment) Reset() {
	e.policy.Reset()
}

// Generic Dataset that contains information after processing the traces
type DataSet interface{}

// Analyzer compresses the information in the traces to a DataSet
type Analyzer interface {
	// run, episode, experiment, trace
	Analyze(int, int, string, *Trace)
	// Resulting dataset
	DataSet() DataSet
	// Reset the analyzer
	Reset()
}

// Comparator differentiates between different datasets with associated names
// run, experiment names, datasets
type Comparator func(int, []string, []DataSet)

func NoopComparator() Comparator {
	return func(_ int, _ []string, _ []DataSet) {}
}

// ComparisonConfig contains the configuration for the comparison
type ComparisonConfig struct {
	Runs     int // number of runs
	Episodes int // number of episodes
	Horizon  int // number of steps

	RecordPath string // path to store the configuration, empty disables it
	Recorder   TraceRecorder
	Logger     logrus.FieldLogger
	LogEvery   int

	ConsecutiveErrorsAbort int
}

// Comparison contains the different experiments to compare
// The traces obtained from the experiments are analyzed
// The analyzed datasets are then compared
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	cConfig     *ComparisonConfig
}

// NewComparison creates a comparison instance
func NewComparison(config *ComparisonConfig) *Comparison {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	if config.ConsecutiveErrorsAbort == 0 {
		config.ConsecutiveErrorsAbort = 10
	}
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		cConfig:     config,
	}
}

// AddAnalysis adds an analyzer and comparator to the comparison
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

// Add experiments to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the comparison
func (c *Comparison) Run(ctx context.Context) error {
	if err := c.recordConfig(); err != nil {
		return err
	}

	for run := 0; run < c.cConfig.Runs; run++ {
		c.cConfig.Logger.WithField("run", run+1).Info("starting run")
		datasets := make(map[string][]DataSet)
		for name := range c.analyzers {
			datasets[name] = make([]DataSet, len(c.Experiments))
		}

		names := make([]string, len(c.Experiments))
		for i, e := range c.Experiments {
			if err := e.Run(c.prepareRunConfig(ctx, run)); err != nil {
				return err
			}
			for name, a := range c.analyzers {
				datasets[name][i] = a.DataSet()
				a.Reset()
			}
			names[i] = e.Name
			e.Reset()
		}
		for name, comp := range c.comparators {
			comp(run, names, datasets[name])
		}
	}
	return nil
}

func (c *Comparison) prepareRunConfig(ctx context.Context, run int) *experimentRunConfig {
	rCfg := &experimentRunConfig{
		CurrentRun:             run,
		Episodes:               c.cConfig.Episodes,
		Horizon:                c.cConfig.Horizon,
		Analyzers:              make([]Analyzer, 0, len(c.analyzers)),
		Context:                ctx,
		Recorder:               c.cConfig.Recorder,
		Logger:                 c.cConfig.Logger,
		LogEvery:               c.cConfig.LogEvery,
		ConsecutiveErrorsAbort: c.cConfig.ConsecutiveErrorsAbort,
	}
	for _, a := range c.analyzers {
		rCfg.Analyzers = append(rCfg.Analyzers, a)
	}
	return rCfg
}

// record the configuration of the comparison
func (c *Comparison) recordConfig() error {
	cfg := c.cConfig
	if cfg.RecordPath == "" {
		return nil
	}
	out := make(map[string]interface{})
	out["runs"] = cfg.Runs
	out["episodes"] = cfg.Episodes
	out["horizon"] = cfg.Horizon

	experiments := make([]string, 0)
	for _, e := range c.Experiments {
		experiments = append(experiments, e.Name)
	}
	out["experiments"] = experiments

	analyzers := make([]string, 0)
	for name := range c.analyzers {
		analyzers = append(analyzers, name)
	}
	sort.Strings(analyzers)
	out["analyzers"] = analyzers

	bs, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return util.WriteLines(path.Join(cfg.RecordPath, "comparison_config.json"), string(bs))
}
