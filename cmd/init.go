package cmd

import (
	"time"

	"github.com/marcus/duty/internal/calendar"
	"github.com/marcus/duty/internal/config"
	"github.com/marcus/duty/internal/db"
	"github.com/marcus/duty/internal/output"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the roster database in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Initialize(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		cfg, err := config.Load(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if cfg.PeriodStart == "" {
			if err := config.SetPeriod(baseDir, calendar.DefaultPeriod(time.Now())); err != nil {
				output.Error("save config: %v", err)
				return err
			}
		}

		output.Success("INITIALIZED %s", baseDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
