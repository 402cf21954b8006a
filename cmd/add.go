package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/marcus/duty/internal/calendar"
	"github.com/marcus/duty/internal/config"
	"github.com/marcus/duty/internal/db"
	"github.com/marcus/duty/internal/models"
	"github.com/marcus/duty/internal/output"
	"github.com/marcus/duty/pkg/studentform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add students (opens the form unless --name is given)",
	Example: `  duty add
  duty add --name "Ada" --building 4 --manager --unavailable 1-3,8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		period, err := config.GetPeriod(baseDir, time.Now())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			return addFromFlags(cmd, database, period, name)
		}

		h, err := runForm(database, period, nil)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		return reportSubmissions(h)
	},
}

func addFromFlags(cmd *cobra.Command, database *db.DB, period calendar.Period, name string) error {
	s, err := studentFromFlags(cmd.Flags(), name, period)
	if err != nil {
		output.Error("%v", err)
		return err
	}
	if err := database.CreateStudent(s); err != nil {
		output.Error("%v", err)
		return err
	}

	fmt.Printf("ADDED %s %s\n", s.ID, s.Name)
	return nil
}

// studentFromFlags builds a record from the add flags, applying the same
// field rules as the form
func studentFromFlags(flags *pflag.FlagSet, name string, period calendar.Period) (*models.Student, error) {
	building, _ := flags.GetInt("building")
	manager, _ := flags.GetBool("manager")
	id, _ := flags.GetString("id")
	daysSpec, _ := flags.GetString("unavailable")

	var buildingText string
	if flags.Changed("building") {
		buildingText = strconv.Itoa(building)
	}
	if err := studentform.ValidateStudent(name, buildingText, id); err != nil {
		return nil, err
	}

	days, err := parseDays(daysSpec, period)
	if err != nil {
		return nil, err
	}

	return &models.Student{
		ID:           strings.TrimSpace(id),
		Name:         strings.TrimSpace(name),
		IsManager:    manager,
		Building:     building,
		Unavailables: days,
	}, nil
}

// reportSubmissions prints what the form persisted and fails if any handler
// call failed
func reportSubmissions(h *rosterHandlers) error {
	for _, id := range h.added {
		fmt.Printf("ADDED %s\n", id)
	}
	for _, id := range h.saved {
		fmt.Printf("SAVED %s\n", id)
	}
	for _, err := range h.errs {
		output.Error("%v", err)
	}
	return errors.Join(h.errs...)
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("name", "", "Student name (skips the form)")
	addCmd.Flags().Int("building", 0, "Living building number (1-20)")
	addCmd.Flags().Bool("manager", false, "Mark the student as a manager")
	addCmd.Flags().String("id", "", "Student ID (generated when empty)")
	addCmd.Flags().String("unavailable", "", "Unavailable days, e.g. 1-3,8,15")
}
