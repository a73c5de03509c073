package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/langform/internal/urls"
	"github.com/muurk/langform/internal/version"
)

// AppName is shown in the header of every screen
const AppName = "LANGFORM REGISTRATION"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	InputWidth       = 44 // Width of text inputs and the suggestion list
	MaxSuggestions   = 6  // Suggestion rows shown at once
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Field label (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Field label (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Inline per-field validation message
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(2)

	// Frame around a text input
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Width(InputWidth)

	FocusedInputBoxStyle = InputBoxStyle.
				BorderForeground(PrimaryColor)

	// Suggestion dropdown below the languages input
	SuggestionBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(SubtleColor).
				Width(InputWidth)

	SuggestionItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(TextColor)

	SelectedSuggestionStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Radio options
	RadioStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	SelectedRadioStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(HighlightColor).
				Bold(true)

	// Buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SubtleColor).
			Padding(0, 3)

	FocusedButtonStyle = ButtonStyle.
				Background(PrimaryColor).
				Bold(true)

	// Result screen title
	SuccessBoxStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	SummaryKeyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(14)

	SummaryValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderLabel renders a field label, highlighted when focused
func RenderLabel(text string, focused bool) string {
	if focused {
		return FocusedLabelStyle.Render("› " + text)
	}
	return LabelStyle.Render("  " + text)
}

// RenderFieldError renders an inline field error. Empty input renders nothing.
func RenderFieldError(msg string) string {
	if msg == "" {
		return ""
	}
	return FieldErrorStyle.Render(msg)
}

// RenderRadio renders one radio option
func RenderRadio(label string, checked, highlighted bool) string {
	mark := "( )"
	if checked {
		mark = "(•)"
	}
	if highlighted {
		return SelectedRadioStyle.Render(mark + " " + label)
	}
	return RadioStyle.Render(mark + " " + label)
}

// RenderButton renders a button, highlighted when focused
func RenderButton(text string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render(text)
	}
	return ButtonStyle.Render(text)
}

// BuildHeaderContent creates header content with app name and project URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(urls.Short(urls.Repository))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps every screen in the same full-screen
// panel: header with name and version, the screen content, and a footer with
// context-sensitive help.
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
//	}
//
// Before the first tea.WindowSizeMsg the size is unknown; the panel then
// falls back to MinTerminalWidth and its natural height.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 2)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top)

	if terminalHeight <= 2 {
		return borderStyle.Render(innerContent)
	}

	bordered := borderStyle.Height(terminalHeight - 2).Render(innerContent)
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
