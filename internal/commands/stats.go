package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/db"
	"github.com/balkashynov/stax/internal/ledger"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show bankroll totals and session statistics",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		totals, err := ledger.GetTotals()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("Bankroll")
		fmt.Printf("  Total profit:  %s\n", formatMoney(totals.All))
		fmt.Printf("  Live:          %s\n", formatMoney(totals.Live))
		fmt.Printf("  Online:        %s\n", formatMoney(totals.Online))

		stats, err := db.GetSessionStats()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if stats.TotalSessions == 0 {
			fmt.Println("\nNo live sessions yet.")
			return
		}

		fmt.Println("\nLive sessions")
		fmt.Printf("  Sessions:      %d (%d active)\n", stats.TotalSessions, stats.ActiveSessions)
		fmt.Printf("  Buy-ins:       %s (avg %s)\n", formatMoney(stats.TotalBuyIns), formatMoney(stats.AvgBuyIn))
		fmt.Printf("  Cash-outs:     %s (avg %s)\n", formatMoney(stats.TotalCashOuts), formatMoney(stats.AvgCashOut))
		fmt.Printf("  Profit:        %s (avg %s)\n", formatMoney(stats.TotalProfit), formatMoney(stats.AvgProfit))
		fmt.Printf("  Win rate:      %.1f%%\n", stats.WinRate)
		fmt.Printf("  Best / worst:  %s / %s\n", formatMoney(stats.BiggestWin), formatMoney(stats.BiggestLoss))
		fmt.Printf("  Table time:    %.1fh (%s/h)\n", stats.TotalHours, formatMoney(stats.HourlyRate))
	},
}
