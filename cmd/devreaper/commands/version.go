package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "unknown"
	appBuilt   = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersionInfo records build-time version details injected via ldflags
func SetVersionInfo(version, commit, built string) {
	appVersion = version
	appCommit = commit
	appBuilt = built
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("devreaper %s\n", appVersion)
	fmt.Printf("  commit: %s\n", appCommit)
	fmt.Printf("  built:  %s\n", appBuilt)
}
