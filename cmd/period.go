package cmd

import (
	"fmt"
	"time"

	"github.com/marcus/duty/internal/calendar"
	"github.com/marcus/duty/internal/config"
	"github.com/marcus/duty/internal/daygrid"
	"github.com/marcus/duty/internal/output"
	"github.com/spf13/cobra"
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Show or set the scheduling period",
	Long: `Show or set the scheduling period.

Days are numbered from 1, starting on the Monday the period begins. A start
date that is not a Monday is moved back to the Monday before it.`,
	Example: `  duty period
  duty period --start 2026-11-02 --days 28`,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()
		now := time.Now()

		current, err := config.GetPeriod(baseDir, now)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		start, _ := cmd.Flags().GetString("start")
		days, _ := cmd.Flags().GetInt("days")
		if start == "" && days == 0 {
			printPeriod(current)
			return nil
		}

		if start == "" {
			start = current.StartString()
		}
		if days == 0 {
			days = current.Length
		}

		period, err := calendar.ParsePeriod(start, days, now)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if err := config.SetPeriod(baseDir, period); err != nil {
			output.Error("save config: %v", err)
			return err
		}

		output.Success("PERIOD %s", period)
		return nil
	},
}

func printPeriod(p calendar.Period) {
	fmt.Println(p.String())
	for _, week := range daygrid.New(p.Days(), nil).Weeks() {
		first, last := week[0], week[len(week)-1]
		fmt.Printf("  days %2d-%-2d  %s - %s\n", first, last,
			p.Date(first).Format("Jan 02"), p.Date(last).Format("Jan 02"))
	}
}

func init() {
	rootCmd.AddCommand(periodCmd)

	periodCmd.Flags().String("start", "", "First day of the period (YYYY-MM-DD)")
	periodCmd.Flags().Int("days", 0, fmt.Sprintf("Period length in days (1-%d)", calendar.MaxPeriodDays))
}
