package cmd

import (
	"fmt"
	"log/slog"

	"github.com/marcus/duty/internal/db"
	"github.com/marcus/duty/internal/output"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [student-id...]",
	Aliases: []string{"rm"},
	Short:   "Delete students",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		var failed bool
		for _, id := range args {
			if err := database.DeleteStudent(id); err != nil {
				output.Error("%s: %v", id, err)
				failed = true
				continue
			}
			slog.Info("student deleted", "id", id)
			fmt.Printf("DELETED %s\n", db.NormalizeStudentID(id))
		}

		if failed {
			return fmt.Errorf("some students could not be deleted")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
