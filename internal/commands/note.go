package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/stax/internal/db"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage hand notes",
	Long:  "Record and review notable hands within a session.",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <session-id> <text>",
	Short: "Add a hand note to a session",
	Long: `Add a hand note to a session, with optional structured fields.

Example:
  stax note add 42 "flopped set, stacked the LAG" --cards AhAd --position BTN --result won`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		sessionID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		cards, _ := cmd.Flags().GetString("cards")
		position, _ := cmd.Flags().GetString("position")
		result, _ := cmd.Flags().GetString("result")

		note, err := db.AddHandNote(sessionID, db.AddHandNoteRequest{
			HandCards: cards,
			Position:  position,
			Result:    result,
			NoteText:  strings.Join(args[1:], " "),
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Added note #%d to session #%d\n", note.ID, sessionID)
	},
}

var noteListCmd = &cobra.Command{
	Use:   "ls <session-id>",
	Short: "List a session's hand notes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		sessionID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if _, err := db.GetSessionByID(sessionID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		notes, err := db.GetHandNotes(sessionID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(notes) == 0 {
			fmt.Printf("No hand notes for session #%d\n", sessionID)
			return
		}

		for _, note := range notes {
			var meta []string
			if note.HandCards != "" {
				meta = append(meta, note.HandCards)
			}
			if note.Position != "" {
				meta = append(meta, note.Position)
			}
			if note.Result != "" {
				meta = append(meta, note.Result)
			}

			header := fmt.Sprintf("#%d %s", note.ID, note.CreatedAt.Format("2006-01-02 15:04"))
			if len(meta) > 0 {
				header += " [" + strings.Join(meta, " / ") + "]"
			}
			fmt.Println(header)
			fmt.Printf("  %s\n", note.NoteText)
		}
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:     "rm <note-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a hand note",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := db.DeleteHandNote(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Deleted hand note #%d\n", id)
	},
}

func init() {
	noteAddCmd.Flags().String("cards", "", "Hole cards, e.g. AhAd")
	noteAddCmd.Flags().String("position", "", "Table position, e.g. BTN")
	noteAddCmd.Flags().String("result", "", "Hand result, e.g. won/lost")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteDeleteCmd)
}
