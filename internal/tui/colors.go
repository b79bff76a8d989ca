package tui

// Color constants for stax TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F1E15" // Dark felt green
	ColorBorder         = "#3A554A" // Muted green-grey

	// Text Colors
	ColorPrimaryText   = "#E8F0EA" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#A8BDB0" // Secondary text
	ColorDisabledText  = "#66796E" // Disabled/muted text
	ColorPlaceholder   = "#A8BDB0" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Felt-green theme)
	ColorAccentMain   = "#16A34A" // Accent elements, active borders
	ColorAccentBright = "#4ADE80" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors, losing sessions
	ColorSuccess = "#22C55E" // Success, winning sessions
	ColorWarning = "#F59E0B" // Warnings, active sessions
)
