package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/db"
)

var editCmd = &cobra.Command{
	Use:   "edit <session-id>",
	Short: "Edit an existing session",
	Long: `Edit any field of a session. Only the flags you pass are changed.

Supplying --cashout recomputes profit and marks the session completed.
Duration is recomputed when start/end changes leave end after start.

Examples:
  stax edit 42 --notes "tough table"
  stax edit 42 --cashout 250
  stax edit 42 --start "2025-01-01 19:00" --end "2025-01-01 23:00"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		var req db.UpdateSessionRequest

		stringFlag := func(name string, dst **string) {
			if cmd.Flags().Changed(name) {
				v, _ := cmd.Flags().GetString(name)
				*dst = &v
			}
		}
		moneyFlag := func(name string, dst **decimal.Decimal) error {
			if !cmd.Flags().Changed(name) {
				return nil
			}
			v, _ := cmd.Flags().GetString(name)
			d, err := parseMoney(name, v)
			if err != nil {
				return err
			}
			*dst = &d
			return nil
		}
		timeFlag := func(name string, dst **time.Time) error {
			if !cmd.Flags().Changed(name) {
				return nil
			}
			v, _ := cmd.Flags().GetString(name)
			t, err := parseTimeFlag(name, v)
			if err != nil {
				return err
			}
			*dst = &t
			return nil
		}

		stringFlag("type", &req.GameType)
		stringFlag("location", &req.Location)
		stringFlag("game", &req.Game)
		stringFlag("blinds", &req.Blinds)
		stringFlag("notes", &req.Notes)
		if err := moneyFlag("buyin", &req.BuyIn); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := moneyFlag("cashout", &req.CashOut); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := timeFlag("start", &req.StartedAt); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := timeFlag("end", &req.EndedAt); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if cmd.Flags().Changed("duration") {
			d, _ := cmd.Flags().GetInt("duration")
			req.DurationMinutes = &d
		}

		session, err := db.UpdateSession(id, req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Updated session #%d\n", session.ID)
		if session.Profit != nil {
			fmt.Printf("  Profit: %s\n", formatMoney(*session.Profit))
		}
	},
}

var deleteCmd = &cobra.Command{
	Use:     "rm <session-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a session",
	Long:    "Delete a session and its hand notes.",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := db.DeleteSession(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Deleted session #%d\n", id)
	},
}

func init() {
	editCmd.Flags().String("type", "", "Game type: cash or tournament")
	editCmd.Flags().String("buyin", "", "Buy-in amount")
	editCmd.Flags().String("cashout", "", "Cash-out amount (completes the session)")
	editCmd.Flags().String("start", "", "Start time (YYYY-MM-DD HH:MM)")
	editCmd.Flags().String("end", "", "End time (YYYY-MM-DD HH:MM)")
	editCmd.Flags().Int("duration", 0, "Duration in minutes")
	editCmd.Flags().String("location", "", "Where the session was played")
	editCmd.Flags().String("game", "", "Game variant")
	editCmd.Flags().String("blinds", "", "Stakes")
	editCmd.Flags().String("notes", "", "Session notes")
}
