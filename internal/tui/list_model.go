package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/stax/internal/models"
)

// SessionListModel represents the TUI model for browsing sessions
type SessionListModel struct {
	width  int
	height int

	sessions []models.Session
	selected int // index in sessions slice

	// Pagination
	currentPage    int
	rowsPerPage    int
	showingDetails bool
}

// NewSessionListModel creates a new session list TUI model
func NewSessionListModel(sessions []models.Session) SessionListModel {
	return SessionListModel{
		sessions:    sessions,
		rowsPerPage: 15,
	}
}

// Init initializes the model
func (m SessionListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m SessionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Header(3) + pagination(1) + help(1) + borders and padding(6)
		available := m.height - 11
		if available < 3 {
			available = 3
		}
		m.rowsPerPage = available
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.showingDetails && msg.String() == "esc" {
				m.showingDetails = false
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.currentPage = m.selected / m.rowsPerPage
			}
			return m, nil

		case "down", "j":
			if m.selected < len(m.sessions)-1 {
				m.selected++
				m.currentPage = m.selected / m.rowsPerPage
			}
			return m, nil

		case "enter":
			if len(m.sessions) > 0 {
				m.showingDetails = !m.showingDetails
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the session table or the detail card
func (m SessionListModel) View() string {
	if len(m.sessions) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Padding(1, 2).
			Render("No sessions yet. Start one with 'stax add'.")
	}

	if m.showingDetails {
		return m.detailView()
	}
	return m.tableView()
}

func (m SessionListModel) tableView() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	rowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("stax — sessions"))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-5s %-16s %-11s %-12s %-10s %-10s %s",
		"ID", "DATE", "TYPE", "WHERE", "BUY-IN", "PROFIT", "STATUS")))
	b.WriteString("\n")

	start := m.currentPage * m.rowsPerPage
	end := start + m.rowsPerPage
	if end > len(m.sessions) {
		end = len(m.sessions)
	}

	for i := start; i < end; i++ {
		s := m.sessions[i]

		where := s.Location
		if len(where) > 10 {
			where = where[:7] + "..."
		}

		profit := "-"
		status := "active"
		if s.Profit != nil {
			status = "done"
			if s.Profit.IsNegative() {
				profit = "-$" + s.Profit.Abs().StringFixed(2)
			} else {
				profit = "$" + s.Profit.StringFixed(2)
			}
		}

		line := fmt.Sprintf("%-5d %-16s %-11s %-12s %-10s %-10s %s",
			s.ID, s.StartedAt.Format("2006-01-02 15:04"), s.GameType, where,
			"$"+s.BuyIn.StringFixed(2), profit, status)

		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	totalPages := (len(m.sessions) + m.rowsPerPage - 1) / m.rowsPerPage
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("page %d/%d • ↑/↓: move • enter: details • q: quit",
		m.currentPage+1, totalPages)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m SessionListModel) detailView() string {
	s := m.sessions[m.selected]

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Width(12)
	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText))

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render(fmt.Sprintf("Session #%d", s.ID)))
	b.WriteString("\n\n")

	b.WriteString(row("Started", s.StartedAt.Format("2006-01-02 15:04")))
	if s.EndedAt != nil {
		b.WriteString(row("Ended", s.EndedAt.Format("2006-01-02 15:04")))
	}
	b.WriteString(row("Type", s.GameType))
	if s.Location != "" {
		b.WriteString(row("Location", s.Location))
	}
	if s.Game != "" {
		b.WriteString(row("Game", s.Game))
	}
	if s.Blinds != "" {
		b.WriteString(row("Blinds", s.Blinds))
	}
	b.WriteString(row("Buy-in", "$"+s.BuyIn.StringFixed(2)))
	if s.CashOut != nil {
		b.WriteString(row("Cash-out", "$"+s.CashOut.StringFixed(2)))
	}
	if s.Profit != nil {
		color := ColorSuccess
		profit := "$" + s.Profit.StringFixed(2)
		if s.Profit.IsNegative() {
			color = ColorError
			profit = "-$" + s.Profit.Abs().StringFixed(2)
		}
		b.WriteString(labelStyle.Render("Profit") +
			lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).
				Render(profit) + "\n")
	}
	if s.DurationMinutes > 0 {
		b.WriteString(row("Duration", fmt.Sprintf("%dh %dm", s.DurationMinutes/60, s.DurationMinutes%60)))
	}
	if s.Notes != "" {
		b.WriteString(row("Notes", s.Notes))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: back • q: quit"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
