package commands

import (
	"github.com/spf13/cobra"

	"github.com/teableio/devreaper/internal/config"
	"github.com/teableio/devreaper/internal/events"
	"github.com/teableio/devreaper/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cleanup triggers",
	Long: `Serve listens for cleanup triggers and runs the identical pass the
run command does. Two trigger mechanisms are served:

  HTTP   any request to / runs a pass and returns the JSON summary
  NATS   when NATS_URL is set, a message on the cleanup subject runs a
         pass; the result is only logged`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	runner, err := buildRunner(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.NATSURL != "" {
		sub, err := events.Connect(cfg.NATSURL, cfg.NATSSubject, runner, log)
		if err != nil {
			return err
		}
		defer sub.Close()
	}

	srv := server.New(runner, log)
	log.WithField("addr", cfg.ListenAddr).Info("listening for cleanup triggers")
	return srv.ListenAndServe(cfg.ListenAddr)
}
