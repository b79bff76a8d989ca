package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/db"
)

var cashoutCmd = &cobra.Command{
	Use:   "cashout [session-id]",
	Short: "Cash out an active session",
	Long: `Complete an active session by recording what you left the table with.
Profit is cash-out minus buy-in; duration defaults to elapsed time.

Examples:
  stax cashout 42 --amount 250
  stax cashout 42 --amount 0 --duration 180`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		amountStr, _ := cmd.Flags().GetString("amount")
		if amountStr == "" {
			fmt.Println("Error: --amount is required")
			return
		}
		cashOut, err := parseMoney("cash-out", amountStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		var duration *int
		if cmd.Flags().Changed("duration") {
			d, _ := cmd.Flags().GetInt("duration")
			duration = &d
		}
		notes, _ := cmd.Flags().GetString("notes")

		session, err := db.CashOutSession(id, cashOut, duration, notes)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("💰 Cashed out session #%d for %s\n", session.ID, formatMoney(*session.CashOut))
		fmt.Printf("Profit: %s over %s\n",
			formatMoney(*session.Profit), formatDuration(session.DurationMinutes))
	},
}

func init() {
	cashoutCmd.Flags().String("amount", "", "Cash-out amount")
	cashoutCmd.Flags().Int("duration", 0, "Session length in minutes (default: elapsed time)")
	cashoutCmd.Flags().String("notes", "", "Replace session notes")
}
