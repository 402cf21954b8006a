package cmd

import (
	"time"

	"github.com/marcus/duty/internal/config"
	"github.com/marcus/duty/internal/db"
	"github.com/marcus/duty/internal/output"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [student-id]",
	Short: "Edit or duplicate a student in the form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		student, err := database.GetStudent(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		period, err := config.GetPeriod(baseDir, time.Now())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		h, err := runForm(database, period, student)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		return reportSubmissions(h)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
