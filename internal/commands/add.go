package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/db"
	"github.com/balkashynov/stax/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Start a new live session",
	Long: `Start a new live session with a buy-in. The session stays active until
you cash out with 'stax cashout'.

Modes:
  Interactive: stax add (opens the session form)
  Quick: stax add --buyin 100 --type cash --location Rivers`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		buyInStr, _ := cmd.Flags().GetString("buyin")
		noUI, _ := cmd.Flags().GetBool("no-ui")

		// No buy-in given and UI allowed: open the interactive form
		if buyInStr == "" && !noUI {
			if err := tui.RunAddSessionTUI(cfg); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}
		if buyInStr == "" {
			fmt.Println("Error: --buyin is required with --no-ui")
			return
		}

		buyIn, err := parseMoney("buy-in", buyInStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		gameType, _ := cmd.Flags().GetString("type")
		location, _ := cmd.Flags().GetString("location")
		game, _ := cmd.Flags().GetString("game")
		blinds, _ := cmd.Flags().GetString("blinds")
		notes, _ := cmd.Flags().GetString("notes")

		session, err := db.CreateSession(db.CreateSessionRequest{
			GameType: gameType,
			BuyIn:    buyIn,
			Location: location,
			Game:     game,
			Blinds:   blinds,
			Notes:    notes,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🃏 Started session #%d (%s, buy-in %s)\n",
			session.ID, session.GameType, formatMoney(session.BuyIn))
		fmt.Printf("Started at: %s\n", session.StartedAt.Format("15:04:05"))
	},
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a finished session",
	Long: `Record a session that already ended, with explicit start and end times.
Duration is derived from the two timestamps.

Example:
  stax log --buyin 50 --cashout 0 --start "2025-01-01 19:00" --end "2025-01-01 23:00"`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		buyInStr, _ := cmd.Flags().GetString("buyin")
		cashOutStr, _ := cmd.Flags().GetString("cashout")
		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")

		if buyInStr == "" || cashOutStr == "" || startStr == "" || endStr == "" {
			fmt.Println("Error: --buyin, --cashout, --start and --end are required")
			return
		}

		buyIn, err := parseMoney("buy-in", buyInStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		cashOut, err := parseMoney("cash-out", cashOutStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		start, err := parseTimeFlag("start", startStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		end, err := parseTimeFlag("end", endStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		gameType, _ := cmd.Flags().GetString("type")
		location, _ := cmd.Flags().GetString("location")
		game, _ := cmd.Flags().GetString("game")
		blinds, _ := cmd.Flags().GetString("blinds")
		notes, _ := cmd.Flags().GetString("notes")

		session, err := db.CreateCompletedSession(db.CreateCompletedSessionRequest{
			GameType:  gameType,
			BuyIn:     buyIn,
			CashOut:   cashOut,
			StartedAt: start,
			EndedAt:   end,
			Location:  location,
			Game:      game,
			Blinds:    blinds,
			Notes:     notes,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Recorded session #%d: profit %s over %s\n",
			session.ID, formatMoney(*session.Profit), formatDuration(session.DurationMinutes))
	},
}

func init() {
	addCmd.Flags().String("buyin", "", "Buy-in amount (required without UI)")
	addCmd.Flags().String("type", "cash", "Game type: cash or tournament")
	addCmd.Flags().String("location", "", "Where the session is played")
	addCmd.Flags().String("game", "", "Game variant (NLHE, PLO, ...)")
	addCmd.Flags().String("blinds", "", "Stakes, e.g. $1/$3")
	addCmd.Flags().String("notes", "", "Session notes")
	addCmd.Flags().Bool("no-ui", false, "Create directly without the interactive form")

	logCmd.Flags().String("buyin", "", "Buy-in amount")
	logCmd.Flags().String("cashout", "", "Cash-out amount")
	logCmd.Flags().String("start", "", "Start time (YYYY-MM-DD HH:MM)")
	logCmd.Flags().String("end", "", "End time (YYYY-MM-DD HH:MM)")
	logCmd.Flags().String("type", "cash", "Game type: cash or tournament")
	logCmd.Flags().String("location", "", "Where the session was played")
	logCmd.Flags().String("game", "", "Game variant (NLHE, PLO, ...)")
	logCmd.Flags().String("blinds", "", "Stakes, e.g. $1/$3")
	logCmd.Flags().String("notes", "", "Session notes")
}
