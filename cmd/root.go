package cmd

import (
	"fmt"
	"os"

	"github.com/marcus/duty/internal/workdir"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
	debug   bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "duty",
	Short: "Student roster and unavailable-day planner",
	Long: `duty - keeps a roster of students for dormitory duty and the days each of them cannot take a shift.

Students are added and edited in a terminal form with a day grid for marking unavailable days.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(getBaseDir(), debug)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	// Finalizers also run when RunE fails
	cobra.OnFinalize(closeLogging)

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to .duty/duty.log")
}

func initBaseDir() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = workdir.ResolveBaseDir(cwd)
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}
