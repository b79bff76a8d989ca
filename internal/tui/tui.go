package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/stax/internal/config"
	"github.com/balkashynov/stax/internal/models"
)

// RunAddSessionTUI starts the interactive new-session form
func RunAddSessionTUI(cfg *config.Config) error {
	model := NewAddSessionModel(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddSessionModel); ok {
		if m.cancelled {
			fmt.Println("❌ Session creation cancelled.")
		} else if m.completed && m.createdID > 0 {
			fmt.Printf("🃏 Started session #%d (buy-in %s)\n", m.createdID, m.createdBuyIn)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunSessionListTUI starts the interactive session browser
func RunSessionListTUI(sessions []models.Session) error {
	model := NewSessionListModel(sessions)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
