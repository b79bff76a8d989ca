package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/balkashynov/stax/internal/config"
	"github.com/balkashynov/stax/internal/db"
	"github.com/balkashynov/stax/internal/models"
)

// Step represents the current step in the session form
type Step int

const (
	StepBuyIn Step = iota
	StepGameType
	StepLocation
	StepGame
	StepBlinds
	StepNotes
	StepComplete
)

var stepLabels = []string{
	"Buy-in",
	"Game type",
	"Location",
	"Game",
	"Blinds",
	"Notes",
}

// AddSessionModel represents the TUI model for starting a live session
type AddSessionModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	cfg *config.Config

	// State
	err           error
	completed     bool
	cancelled     bool
	validationErr string
	createdID     uint
	createdBuyIn  string
}

// NewAddSessionModel creates a new add session TUI model
func NewAddSessionModel(cfg *config.Config) AddSessionModel {
	inputs := make([]textinput.Model, 6)

	// Apply color theme to all inputs
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	// Buy-in input
	inputs[0].Placeholder = "Buy-in amount, e.g. 300 (required)"
	inputs[0].Focus()
	inputs[0].CharLimit = 12

	// Game type input
	inputs[1].Placeholder = "cash or tournament (Enter for cash)"
	inputs[1].CharLimit = 10

	// Location input
	inputs[2].Placeholder = fmt.Sprintf("%s (Enter to skip)", strings.Join(cfg.Locations, ", "))
	inputs[2].CharLimit = 50

	// Game input
	inputs[3].Placeholder = fmt.Sprintf("%s (Enter to skip)", strings.Join(cfg.Games, ", "))
	inputs[3].CharLimit = 20

	// Blinds input
	inputs[4].Placeholder = fmt.Sprintf("%s (Enter to skip)", strings.Join(cfg.Blinds, ", "))
	inputs[4].CharLimit = 20

	// Notes input
	inputs[5].Placeholder = "Session notes (Enter to skip)"
	inputs[5].CharLimit = 500

	return AddSessionModel{
		currentStep: StepBuyIn,
		inputs:      inputs,
		cfg:         cfg,
	}
}

// Init initializes the model
func (m AddSessionModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddSessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "shift+tab", "up":
			if m.currentStep > StepBuyIn {
				m.validationErr = ""
				m.inputs[m.currentStep].Blur()
				m.currentStep--
				m.inputs[m.currentStep].Focus()
			}
			return m, nil
		}
	}

	// Forward everything else to the focused input
	var cmd tea.Cmd
	if int(m.currentStep) < len(m.inputs) {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

// handleEnter validates the current step and advances, saving on the last one
func (m AddSessionModel) handleEnter() (tea.Model, tea.Cmd) {
	if msg := m.validateStep(m.currentStep); msg != "" {
		m.validationErr = msg
		return m, nil
	}
	m.validationErr = ""

	if m.currentStep < StepNotes {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
		m.inputs[m.currentStep].Focus()
		return m, nil
	}

	// Last step: create the session
	buyIn, _ := decimal.NewFromString(strings.TrimSpace(m.inputs[StepBuyIn].Value()))
	gameType := strings.ToLower(strings.TrimSpace(m.inputs[StepGameType].Value()))
	if gameType == "" {
		gameType = models.GameTypeCash
	}

	session, err := db.CreateSession(db.CreateSessionRequest{
		GameType: gameType,
		BuyIn:    buyIn,
		Location: strings.TrimSpace(m.inputs[StepLocation].Value()),
		Game:     strings.TrimSpace(m.inputs[StepGame].Value()),
		Blinds:   strings.TrimSpace(m.inputs[StepBlinds].Value()),
		Notes:    strings.TrimSpace(m.inputs[StepNotes].Value()),
	})
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.completed = true
	m.createdID = session.ID
	m.createdBuyIn = "$" + session.BuyIn.StringFixed(2)
	m.currentStep = StepComplete
	return m, tea.Quit
}

// validateStep checks the current input before advancing
func (m AddSessionModel) validateStep(step Step) string {
	value := strings.TrimSpace(m.inputs[step].Value())

	switch step {
	case StepBuyIn:
		if value == "" {
			return "Buy-in is required"
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			return "Buy-in must be a number"
		}
		if !d.IsPositive() {
			return "Buy-in must be greater than 0"
		}
	case StepGameType:
		if value != "" && value != models.GameTypeCash && value != models.GameTypeTournament {
			return "Game type must be cash or tournament"
		}
	}
	return ""
}

// View renders the form
func (m AddSessionModel) View() string {
	if m.completed || m.cancelled {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	doneStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))
	pendingStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText))
	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("stax — new session"))
	b.WriteString("\n\n")

	for i, label := range stepLabels {
		step := Step(i)
		switch {
		case step < m.currentStep:
			value := strings.TrimSpace(m.inputs[i].Value())
			if value == "" {
				value = "—"
			}
			b.WriteString(doneStyle.Render(fmt.Sprintf("  %s: %s", label, value)))
			b.WriteString("\n")
		case step == m.currentStep:
			b.WriteString(labelStyle.Render(fmt.Sprintf("> %s", label)))
			b.WriteString("\n  ")
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		default:
			b.WriteString(pendingStyle.Render(fmt.Sprintf("  %s", label)))
			b.WriteString("\n")
		}
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  " + m.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: next • up: back • esc: cancel"))

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
