package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/ledger"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show profit over time",
	Long: `Show bucketed profit with a running total. Buckets with no activity are
omitted.

Examples:
  stax progress --period quarterly
  stax progress --period weekly --range 3m --filter online
  stax progress --year 2025 --filter live`,
	Run: func(cmd *cobra.Command, args []string) {
		filterStr, _ := cmd.Flags().GetString("filter")
		filter, err := ledger.ParseFilter(filterStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		initDB()

		var points []ledger.Point

		if cmd.Flags().Changed("year") {
			year, _ := cmd.Flags().GetInt("year")
			points, err = ledger.YearProgress(year, filter)
		} else {
			periodStr, _ := cmd.Flags().GetString("period")
			var period ledger.Period
			period, err = ledger.ParsePeriod(periodStr)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}

			if period == ledger.Weekly {
				rangeStr, _ := cmd.Flags().GetString("range")
				points, err = ledger.WeeklyProgress(rangeStr, filter)
			} else {
				points, err = ledger.TimeSeries(period, filter, ledger.Range{})
			}
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(points) == 0 {
			fmt.Println("No activity in this range.")
			return
		}

		fmt.Printf("%-12s %-12s %s\n", "PERIOD", "PROFIT", "CUMULATIVE")
		fmt.Println(strings.Repeat("-", 38))
		for _, p := range points {
			fmt.Printf("%-12s %-12s %s\n",
				p.Bucket, formatMoney(p.PeriodProfit), formatMoney(p.CumulativeProfit))
		}

		if years, err := ledger.AvailableYears(); err == nil && !cmd.Flags().Changed("year") {
			var labels []string
			for _, y := range years {
				labels = append(labels, fmt.Sprintf("%d", y))
			}
			fmt.Printf("\nYears with session activity: %s\n", strings.Join(labels, ", "))
		}
	},
}

func init() {
	progressCmd.Flags().String("period", "yearly", "Bucket size: daily, weekly, quarterly, yearly")
	progressCmd.Flags().String("filter", "all", "Source filter: all, live, online")
	progressCmd.Flags().String("range", "all", "Weekly range: 1m, 3m, 6m, 12m, all")
	progressCmd.Flags().Int("year", 0, "Daily progress for one calendar year")
}
