package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/teableio/devreaper/internal/config"
	"github.com/teableio/devreaper/internal/gcp"
	"github.com/teableio/devreaper/internal/logger"
	"github.com/teableio/devreaper/internal/reaper"
)

var (
	cfgFile string
	log     logger.Logger = logger.NewLogrus()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "devreaper",
	Short: "Stop idle dev environments by snapshotting and deleting them",
	Long: `devreaper reclaims cost from idle cloud dev environments.

Every instance labeled purpose=dev-env in the configured zone is checked
against its last-active-at metadata. An environment idle for longer than
the timeout is stopped: its disk is snapshotted (one snapshot per user,
always the freshest) and the compute instance deleted. User data survives
in the snapshot and comes back on the next spin-up.

A stop never deletes compute without a confirmed-successful snapshot.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			runVersion(cmd, []string{})
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (environment variables take precedence)")
	rootCmd.Flags().Bool("version", false, "show version information")
}

// buildRunner wires the GCP client, waiter and stopper into one runner.
func buildRunner(ctx context.Context, cfg *config.Config) (*reaper.Runner, error) {
	client, err := gcp.NewClient(ctx, gcp.ClientConfig{
		ProjectID:       cfg.ProjectID,
		Zone:            cfg.Zone,
		CredentialsFile: cfg.CredentialsFile,
	})
	if err != nil {
		return nil, err
	}

	waiter := reaper.NewWaiter(client, cfg.PollInterval, cfg.PollTimeout)
	stopper := reaper.NewStopper(client, waiter, log)
	return reaper.NewRunner(client, stopper, cfg.IdleTimeout(), log), nil
}
