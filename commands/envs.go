package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvsCommand lists the registered environments with their spaces
func EnvsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List the registered environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			registry, err := registryFor(cfg)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tMAX STEPS\tACTIONS\tOBSERVATION")
			for _, spec := range registry.Specs() {
				env, err := spec.New()
				if err != nil {
					fmt.Fprintf(tw, "%s\t%d\t-\t%v\n", spec.ID, spec.MaxEpisodeSteps, err)
					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", spec.ID, spec.MaxEpisodeSteps, env.ActionSpace(), env.ObservationSpace())
			}
			return tw.Flush()
		},
	}
}
