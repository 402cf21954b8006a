package cmd

import (
	"fmt"

	"github.com/marcus/duty/internal/db"
	"github.com/marcus/duty/internal/models"
	"github.com/marcus/duty/internal/output"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List students",
	Example: `  duty list --building 4
  duty list --available-on 12 --managers
  duty list --search ada`,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		opts := db.ListStudentsOptions{}
		opts.Building, _ = cmd.Flags().GetInt("building")
		opts.ManagersOnly, _ = cmd.Flags().GetBool("managers")
		opts.AvailableOn, _ = cmd.Flags().GetInt("available-on")

		students, err := database.ListStudents(opts)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if query, _ := cmd.Flags().GetString("search"); query != "" {
			students = searchStudents(students, query)
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			if students == nil {
				students = []models.Student{}
			}
			return output.JSON(students)
		}

		if len(students) == 0 {
			fmt.Println("No students")
			return nil
		}

		if tree, _ := cmd.Flags().GetBool("tree"); tree {
			fmt.Println(output.RenderTree(output.BuildingTree(students), output.TreeRenderOptions{
				ShowIDs:     true,
				MarkManager: true,
			}))
			return nil
		}

		width := output.TerminalWidth()
		for i := range students {
			fmt.Println(output.FormatStudentShort(&students[i], width))
		}
		return nil
	},
}

// studentNames adapts a student slice to fuzzy.Source
type studentNames []models.Student

func (s studentNames) String(i int) string { return s[i].Name }
func (s studentNames) Len() int            { return len(s) }

// searchStudents keeps students whose name fuzzy-matches query, best match
// first
func searchStudents(students []models.Student, query string) []models.Student {
	matches := fuzzy.FindFrom(query, studentNames(students))
	result := make([]models.Student, 0, len(matches))
	for _, m := range matches {
		result = append(result, students[m.Index])
	}
	return result
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Int("building", 0, "Only students living in this building")
	listCmd.Flags().Bool("managers", false, "Only managers")
	listCmd.Flags().Int("available-on", 0, "Only students available on this day")
	listCmd.Flags().StringP("search", "s", "", "Fuzzy search by name")
	listCmd.Flags().Bool("tree", false, "Group by building")
	listCmd.Flags().Bool("json", false, "JSON output")
}
