package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeu5/player-selector/server"
)

// ServeCommand hosts the environments over HTTP until interrupted
func ServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the environments over HTTP",
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
			ctx, stop := interruptContext()
			defer stop()

			return server.New(cfg.ListenAddr, registry, cfg.Logger()).Run(ctx)
		},
	}
	cmd.Flags().String("listen", ":5000", "Address to listen on")
	_ = v.BindPFlag("listen_addr", cmd.Flags().Lookup("listen"))
	return cmd
}
