package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/teableio/devreaper/internal/config"
	"github.com/teableio/devreaper/internal/reaper"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one cleanup pass and print the summary",
	Long: `Run lists all dev environment instances, stops the idle ones and
prints what happened. This is the same pass the serve triggers execute.`,
	RunE: runCleanup,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	runner, err := buildRunner(ctx, cfg)
	if err != nil {
		return err
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func printSummary(summary *reaper.RunSummary) {
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, e := range summary.Stopped {
		fmt.Printf("%s %s (%s): %s\n", red("stopped"), e.Name, e.Username, e.Reason)
	}
	for _, e := range summary.Kept {
		fmt.Printf("%s    %s (%s): %s\n", green("kept"), e.Name, e.Username, e.Reason)
	}
	for _, e := range summary.Failed {
		fmt.Printf("%s  %s (%s): %s\n", yellow("failed"), e.Name, e.Username, e.Reason)
	}

	fmt.Println(summary.Summary)
	if len(summary.Failed) > 0 {
		fmt.Printf("%d stop attempt(s) failed, see log output\n", len(summary.Failed))
	}
}
