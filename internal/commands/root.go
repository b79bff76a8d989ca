package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/config"
	"github.com/balkashynov/stax/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg is loaded once per invocation by initDB and handed to everything that
// needs it.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "stax",
	Short: "A CLI poker bankroll tracker",
	Long: `stax tracks your poker bankroll across live sessions and online play.
Log live sessions with buy-ins and cash-outs, import online transaction
history from CSV exports, and watch your profit over time.`,
}

// initDB loads the config and opens the database, panicking on failure
func initDB() {
	c, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg = c
	if err := db.Initialize(c); err != nil {
		panic(err)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stax %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(cashoutCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(versionCmd)
}
