package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/marcus/duty/internal/config"
	"github.com/marcus/duty/internal/db"
	"github.com/marcus/duty/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [student-id]",
	Short: "Show a student and their unavailable days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		student, err := database.GetStudent(args[0])
		if err != nil {
			if jsonOutput && errors.Is(err, db.ErrNotFound) {
				output.JSONError("not_found", err.Error())
			} else {
				output.Error("%v", err)
			}
			return err
		}

		if jsonOutput {
			return output.JSON(student)
		}

		width := output.TerminalWidth()
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Println(output.FormatStudentShort(student, width))
			return nil
		}

		period, err := config.GetPeriod(baseDir, time.Now())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		style, _ := cmd.Flags().GetString("style")
		rendered, err := output.RenderMarkdown(output.StudentMarkdown(student, period), width, style)
		if err != nil {
			output.Error("render: %v", err)
			return err
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("json", false, "JSON output")
	showCmd.Flags().Bool("short", false, "One-line summary")
	showCmd.Flags().String("style", "", "Glamour style (auto when empty, \"notty\" for plain text)")
}
