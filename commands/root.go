// Package commands holds the command line entry points.
package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeu5/player-selector/catalogue"
	"github.com/zeu5/player-selector/config"
	"github.com/zeu5/player-selector/envs"
	"github.com/zeu5/player-selector/types"
)

var configFile string

// GetRootCommand wires the flags into a fresh viper instance and adds the subcommands
func GetRootCommand() *cobra.Command {
	v := viper.New()
	rootCommand := &cobra.Command{
		Use:           "selector",
		Short:         "Player selection environments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file (yaml, json or toml)")
	flags.IntP("episodes", "e", 1000, "Number of episodes to run")
	flags.Int("horizon", 200, "Horizon of each episode")
	flags.StringP("save", "s", "results", "Save the result data in the specified folder")
	flags.Int("runs", 1, "Number of experiment runs")
	flags.String("selector2-catalogue", "data/playerselector2_players.csv", "Catalogue of PlayerSelector2-v0")
	flags.String("selector3-catalogue", "data/playerselector3_players.csv", "Catalogue of PlayerSelector3-v0")
	flags.String("log-level", "info", "Log level")
	for _, name := range []string{"episodes", "horizon", "save", "runs", "selector2-catalogue", "selector3-catalogue", "log-level"} {
		_ = v.BindPFlag(flagKey(name), flags.Lookup(name))
	}

	// adding the subcommands here
	rootCommand.AddCommand(EnvsCommand(v))
	rootCommand.AddCommand(PlayCommand(v))
	rootCommand.AddCommand(RolloutCommand(v))
	rootCommand.AddCommand(ServeCommand(v))
	return rootCommand
}

// flag names use dashes, config keys underscores
func flagKey(name string) string {
	out := []byte(name)
	for i, c := range out {
		if c == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}

func loadConfig(v *viper.Viper) (*config.Config, error) {
	return config.Load(v, configFile)
}

func registryFor(cfg *config.Config) (*types.Registry, error) {
	return envs.NewRegistry(envs.Options{
		Selector2Catalogue: &catalogue.CSVLoader{Path: cfg.Selector2Catalogue, Format: catalogue.CommaFormat},
		Selector3Catalogue: &catalogue.CSVLoader{Path: cfg.Selector3Catalogue, Format: catalogue.FormationFormat},
	})
}

// interruptContext is cancelled on the first interrupt or when stop is called
func interruptContext() (context.Context, func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	doneCh := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-sigCh:
		case <-doneCh:
		}
		signal.Stop(sigCh)
		cancel()
	}()
	return ctx, func() { close(doneCh) }
}
