package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/langform/internal/form"
	"github.com/muurk/langform/internal/logging"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenWelcome Screen = "welcome"
	ScreenForm    Screen = "form"
	ScreenSuccess Screen = "success"
)

// Welcome screen copy
const (
	WelcomeTitle   = "Welcome to Our Awesome Form!"
	WelcomeMessage = "We're excited to have you here. Please click the button below to fill out the form."
	ProceedLabel   = "Proceed to Form"
	SuccessTitle   = "Form successfully submitted!"
)

// welcomeKeyMap defines key bindings for the welcome screen
type welcomeKeyMap struct {
	Proceed key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k welcomeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Proceed, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k welcomeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Proceed, k.Quit}}
}

// successKeyMap defines key bindings for the success screen
type successKeyMap struct {
	Continue key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k successKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Continue, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k successKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Continue, k.Quit}}
}

// AppModel is the top-level coordinator model that manages screen transitions.
// The welcome gate itself is owned by the controller: the form screen is shown
// only while Controller.ShowForm is true.
type AppModel struct {
	CurrentScreen  Screen
	PreviousScreen Screen

	// Shared application state
	Controller     *form.Controller
	Options        FormOptions
	LastSubmission *form.Submission

	// Screen models
	FormModel FormModel

	// UI state
	Width  int
	Height int

	// Help
	Help        help.Model
	WelcomeKeys welcomeKeyMap
	SuccessKeys successKeyMap
}

// NewAppModel creates a new application model on the welcome screen
func NewAppModel(c *form.Controller, opts FormOptions) AppModel {
	if c == nil {
		c = form.NewController()
	}

	return AppModel{
		CurrentScreen: ScreenWelcome,
		Controller:    c,
		Options:       opts,
		Help:          help.New(),
		WelcomeKeys: welcomeKeyMap{
			Proceed: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", "proceed to form"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("q", "quit"),
			),
		},
		SuccessKeys: successKeyMap{
			Continue: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("any key", "back to welcome"),
			),
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	if m.CurrentScreen == ScreenForm {
		return m.FormModel.Init()
	}
	return nil
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		if m.CurrentScreen == ScreenForm {
			return m.updateCurrentScreen(msg)
		}
		m.FormModel.Width = msg.Width
		m.FormModel.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.CurrentScreen {
	case ScreenWelcome:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, m.WelcomeKeys.Proceed):
				m.Controller.Proceed()
				return m.transitionTo(ScreenForm)
			case key.Matches(keyMsg, m.WelcomeKeys.Quit):
				return m, tea.Quit
			}
		}

	case ScreenForm:
		updated, cmd := m.FormModel.Update(msg)
		m.FormModel = updated.(FormModel)

		if m.FormModel.Submitted != nil {
			m.LastSubmission = m.FormModel.Submitted
			return m.transitionTo(ScreenSuccess)
		}
		return m, cmd

	case ScreenSuccess:
		// Any key acknowledges; the controller is already back on the welcome gate
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.transitionTo(ScreenWelcome)
		}
	}

	return m, nil
}

// transitionTo transitions to a new screen
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen
	logging.Debug("TUI screen change",
		zap.String("from", string(m.PreviousScreen)),
		zap.String("to", string(screen)),
	)

	var cmd tea.Cmd
	switch screen {
	case ScreenForm:
		m.FormModel = NewFormModel(m.Controller, m.Options)
		m.FormModel.Width = m.Width
		m.FormModel.Height = m.Height
		m.FormModel.Help.Width = m.Width
		cmd = m.FormModel.Init()

	case ScreenWelcome:
		m.LastSubmission = nil
	}

	return m, cmd
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenWelcome:
		return RenderApplicationContainer(m.buildWelcomeContent(), m.footer(m.WelcomeKeys), m.Width, m.Height)
	case ScreenForm:
		return m.FormModel.View()
	case ScreenSuccess:
		return RenderApplicationContainer(m.buildSuccessContent(), m.footer(m.SuccessKeys), m.Width, m.Height)
	default:
		return "Unknown screen"
	}
}

func (m AppModel) footer(keys help.KeyMap) string {
	if m.Options.HideHelp {
		return ""
	}
	return m.Help.View(keys)
}

// buildWelcomeContent builds the welcome screen content
func (m AppModel) buildWelcomeContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle(WelcomeTitle))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle(WelcomeMessage))
	b.WriteString("\n\n")
	b.WriteString(RenderButton(ProceedLabel, true))
	b.WriteString("\n")

	return b.String()
}

// buildSuccessContent builds the acknowledgment shown after a valid submit
func (m AppModel) buildSuccessContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✓ " + SuccessTitle))
	b.WriteString("\n")

	if m.LastSubmission != nil {
		b.WriteString(SuccessBoxStyle.Render("Submitted details:"))
		b.WriteString("\n\n")
		for _, row := range m.LastSubmission.Summary() {
			b.WriteString("  ")
			b.WriteString(SummaryKeyStyle.Render(row[0] + ":"))
			b.WriteString(SummaryValueStyle.Render(row[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(MutedStyle.Render("Press any key to return to the welcome screen."))
	b.WriteString("\n")

	return b.String()
}
