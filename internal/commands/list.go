package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/classify"
	"github.com/balkashynov/stax/internal/db"
	"github.com/balkashynov/stax/internal/tui"
)

// sessionRow is one line of the list output; imported external transactions
// are flattened into the same shape when --imports is set.
type sessionRow struct {
	id       string
	date     time.Time
	gameType string
	where    string
	buyIn    string
	cashOut  string
	profit   *decimal.Decimal
	status   string
}

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List sessions",
	Long:    "List live sessions, optionally merged with imported deposits and withdrawals",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		sessions, err := db.GetSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if ui, _ := cmd.Flags().GetBool("ui"); ui {
			if err := tui.RunSessionListTUI(sessions); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		rows := make([]sessionRow, 0, len(sessions))
		for _, s := range sessions {
			row := sessionRow{
				id:       fmt.Sprintf("%d", s.ID),
				date:     s.StartedAt,
				gameType: s.GameType,
				where:    s.Location,
				buyIn:    formatMoney(s.BuyIn),
				status:   "active",
			}
			if s.CashOut != nil {
				row.cashOut = formatMoney(*s.CashOut)
			}
			if s.Profit != nil {
				row.profit = s.Profit
				row.status = "done"
			}
			rows = append(rows, row)
		}

		if withImports, _ := cmd.Flags().GetBool("imports"); withImports {
			imported, err := importedRows()
			if err != nil {
				fmt.Printf("Error fetching imported transactions: %v\n", err)
				return
			}
			rows = append(rows, imported...)
		}

		if len(rows) == 0 {
			fmt.Println("No sessions found. Use 'stax add' to start your first session.")
			return
		}

		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].date.After(rows[j].date)
		})

		// Print table header
		fmt.Printf("%-8s %-16s %-11s %-14s %-10s %-10s %-10s %s\n",
			"ID", "DATE", "TYPE", "WHERE", "BUY-IN", "CASH-OUT", "PROFIT", "STATUS")
		fmt.Println(strings.Repeat("-", 92))

		for _, row := range rows {
			where := row.where
			if len(where) > 12 {
				where = where[:9] + "..."
			}
			profit := "-"
			if row.profit != nil {
				profit = formatMoney(*row.profit)
			}
			cashOut := row.cashOut
			if cashOut == "" {
				cashOut = "-"
			}

			fmt.Printf("%-8s %-16s %-11s %-14s %-10s %-10s %-10s %s\n",
				row.id,
				row.date.Format("2006-01-02 15:04"),
				row.gameType,
				where,
				row.buyIn,
				cashOut,
				profit,
				row.status)
		}
	},
}

// importedRows converts external transactions into list rows: purchases show
// as deposits (negative profit), redemptions as withdrawals (positive).
func importedRows() ([]sessionRow, error) {
	txns, err := db.GetExternalTransactions()
	if err != nil {
		return nil, err
	}
	accounts, err := db.GetAccounts()
	if err != nil {
		return nil, err
	}
	accountNames := make(map[uint]string, len(accounts))
	for _, a := range accounts {
		accountNames[a.ID] = a.Name
	}

	rows := make([]sessionRow, 0, len(txns))
	for _, t := range txns {
		gameType := "withdrawal"
		if t.Type == classify.TypePurchase {
			gameType = "deposit"
		}
		delta := classify.RealMoneyDelta(t.Type, t.Amount)

		rows = append(rows, sessionRow{
			id:       fmt.Sprintf("i%d", t.ID),
			date:     t.Date,
			gameType: gameType,
			where:    accountNames[t.AccountID],
			buyIn:    "-",
			cashOut:  formatMoney(t.Amount.Abs()),
			profit:   &delta,
			status:   "imported",
		})
	}

	return rows, nil
}

func init() {
	listCmd.Flags().Bool("imports", false, "Include imported deposits/withdrawals")
	listCmd.Flags().Bool("ui", false, "Browse sessions interactively")
}
