package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/classify"
	"github.com/balkashynov/stax/internal/gpcsv"
	"github.com/balkashynov/stax/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import [file.csv]",
	Short: "Import online transaction history from a CSV export",
	Long: `Import a Global Poker transaction history export. Re-importing the same
file (or an overlapping one) is safe: transactions already in the ledger
are skipped, never duplicated.

Examples:
  stax import history.csv --account mike
  stax import --types
  stax import --sample`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if showTypes, _ := cmd.Flags().GetBool("types"); showTypes {
			printTransactionTypes()
			return
		}
		if showSample, _ := cmd.Flags().GetBool("sample"); showSample {
			fmt.Println("Expected format (Date, Type, Amount, Balance):")
			fmt.Println(gpcsv.SampleCSV)
			return
		}

		if len(args) == 0 {
			fmt.Println("Error: a CSV file is required")
			return
		}
		path := args[0]
		if strings.ToLower(filepath.Ext(path)) != ".csv" {
			fmt.Println("Error: only CSV files are supported")
			return
		}

		accountName, _ := cmd.Flags().GetString("account")
		if accountName == "" {
			fmt.Println("Error: --account is required")
			return
		}

		initDB()

		account, result, err := importer.ImportFile(accountName, cfg.ImportPlatform, path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Imported %d transactions for %s (%s), skipped %d duplicates\n",
			result.Imported, account.Name, account.Platform, result.Skipped)
		if len(result.Errors) > 0 {
			fmt.Printf("%d records failed:\n", len(result.Errors))
			for _, e := range result.Errors {
				fmt.Printf("  - %s\n", e)
			}
		}
	},
}

func printTransactionTypes() {
	fmt.Println("External (real money):")
	for _, t := range classify.ExternalTypes {
		fmt.Printf("  %s\n", t)
	}
	fmt.Println("Internal (in-platform only):")
	for _, t := range classify.InternalTypes {
		fmt.Printf("  %s\n", t)
	}
	fmt.Println("\nUnrecognized types are stored but never count toward real-money totals.")
}

func init() {
	importCmd.Flags().String("account", "", "Account name the export belongs to")
	importCmd.Flags().Bool("types", false, "Show recognized transaction types")
	importCmd.Flags().Bool("sample", false, "Show the expected CSV format")
}
