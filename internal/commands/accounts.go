package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/db"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts [account-id]",
	Short: "Show imported accounts and their transactions",
	Long: `Without arguments, lists every imported account with a rollup of its
transactions. With an account id, lists that account's transactions.

Examples:
  stax accounts
  stax accounts 1
  stax accounts --history`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		if history, _ := cmd.Flags().GetBool("history"); history {
			printImportHistory()
			return
		}

		if len(args) == 1 {
			id, err := parseID(args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			printAccountTransactions(id)
			return
		}

		summaries, err := db.ListAccountSummaries()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(summaries) == 0 {
			fmt.Println("No imported accounts. Use 'stax import' to load a CSV export.")
			return
		}

		fmt.Printf("%-4s %-16s %-14s %-6s %-12s %-12s %s\n",
			"ID", "NAME", "PLATFORM", "TXNS", "NET FLOW", "BALANCE", "LAST ACTIVITY")
		fmt.Println(strings.Repeat("-", 84))
		for _, s := range summaries {
			balance := "-"
			if s.CurrentBalance != nil {
				balance = formatMoney(*s.CurrentBalance)
			}
			last := "-"
			if s.LastTransaction != nil {
				last = s.LastTransaction.Format("2006-01-02")
			}
			fmt.Printf("%-4d %-16s %-14s %-6d %-12s %-12s %s\n",
				s.Account.ID, s.Account.Name, s.Account.Platform,
				s.TransactionCount, formatMoney(s.RealMoneyFlow), balance, last)
		}
	},
}

func printAccountTransactions(id uint) {
	txns, err := db.GetAccountTransactions(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(txns) == 0 {
		fmt.Printf("No transactions for account #%d\n", id)
		return
	}

	fmt.Printf("%-6s %-16s %-26s %-10s %-10s %s\n",
		"ID", "DATE", "TYPE", "AMOUNT", "BALANCE", "EXTERNAL")
	fmt.Println(strings.Repeat("-", 80))
	for _, t := range txns {
		external := ""
		if t.IsExternal {
			external = "yes"
		}
		fmt.Printf("%-6d %-16s %-26s %-10s %-10s %s\n",
			t.ID, t.Date.Format("2006-01-02 15:04"), t.Type,
			formatMoney(t.Amount), formatMoney(t.Balance), external)
	}
}

func printImportHistory() {
	batches, err := db.GetImportBatches()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(batches) == 0 {
		fmt.Println("No imports yet.")
		return
	}

	fmt.Printf("%-16s %-24s %-9s %-8s %-7s %s\n",
		"DATE", "FILE", "IMPORTED", "SKIPPED", "FAILED", "BATCH")
	fmt.Println(strings.Repeat("-", 96))
	for _, b := range batches {
		fmt.Printf("%-16s %-24s %-9d %-8d %-7d %s\n",
			b.CreatedAt.Format("2006-01-02 15:04"), b.FileName,
			b.Imported, b.Skipped, b.Failed, b.BatchID)
	}
}

func init() {
	accountsCmd.Flags().Bool("history", false, "Show import run history")
}
