package tui

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/muurk/langform/internal/form"
	"github.com/muurk/langform/internal/tagedit"
)

// Placeholders for the text inputs
const (
	UsernamePlaceholder  = "Enter your username"
	EmailPlaceholder     = "Enter your email"
	LanguagesPlaceholder = "Programming languages you're skilled in"
)

// blurExpiredMsg is delivered when the languages field has been unfocused for
// the blur delay. It goes through the same queue as key events, so a
// selection processed earlier makes the token stale.
type blurExpiredMsg struct {
	token uint64
}

// blurAfter schedules the dismissal of the suggestion list
func blurAfter(delay time.Duration, token uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return blurExpiredMsg{token: token}
	})
}

// focusTarget is a stop in the form's focus ring
type focusTarget int

const (
	focusUsername focusTarget = iota
	focusEmail
	focusGender
	focusLanguages
	focusImage
	focusSubmit
	focusCount
)

// focusFor maps a form field to its focus stop
func focusFor(f form.Field) focusTarget {
	switch f {
	case form.FieldEmail:
		return focusEmail
	case form.FieldGender:
		return focusGender
	case form.FieldLanguages:
		return focusLanguages
	case form.FieldImage:
		return focusImage
	default:
		return focusUsername
	}
}

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Choose key.Binding
	Browse key.Binding
	Clear  key.Binding
	Cancel key.Binding
	Submit key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.Left, k.Right, k.Choose},
		{k.Browse, k.Clear, k.Cancel},
		{k.Submit, k.Help, k.Quit},
	}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up / previous suggestion"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down / next suggestion"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous gender"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next gender"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Browse: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "browse for image"),
		),
		Clear: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("del", "clear image"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close picker"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// FormOptions configures a form screen
type FormOptions struct {
	BlurDelay time.Duration // Suggestion dismissal delay; zero uses tagedit.DefaultBlurDelay
	ImageDir  string        // Starting directory for the image picker; empty uses the working directory
	HideHelp  bool          // Drop the key binding footer
}

// FormModel is the registration form screen. Field values, errors and the
// suggestion list live in the shared form.Controller; this model only holds
// widget state (inputs, cursors, focus, picker).
type FormModel struct {
	controller *form.Controller
	blurDelay  time.Duration
	hideHelp   bool

	// Widgets
	username  textinput.Model
	email     textinput.Model
	languages textinput.Model
	picker    filepicker.Model

	// Cursors
	focus            focusTarget
	genderCursor     int
	suggestionCursor int
	picking          bool
	imageErr         string // Rejected picker selection; cleared on the next selection

	// UI state
	Width  int
	Height int

	// Submitted is set once a submit passes validation
	Submitted *form.Submission

	// Help
	Help help.Model
	Keys formKeyMap
}

// NewFormModel creates the form screen backed by c, with focus on the first field
func NewFormModel(c *form.Controller, opts FormOptions) FormModel {
	if opts.BlurDelay <= 0 {
		opts.BlurDelay = tagedit.DefaultBlurDelay
	}

	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = InputWidth - 4
		in.Prompt = ""
		return in
	}

	username := newInput(UsernamePlaceholder, 64)
	email := newInput(EmailPlaceholder, 254)
	languages := newInput(LanguagesPlaceholder, 512)

	// Restore whatever the controller already holds
	state := c.State()
	username.SetValue(state.Username)
	email.SetValue(state.Email)
	languages.SetValue(c.TagBuffer())
	username.Focus()

	picker := filepicker.New()
	picker.CurrentDirectory = opts.ImageDir
	if picker.CurrentDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			picker.CurrentDirectory = wd
		}
	}
	picker.ShowPermissions = false

	genderCursor := 0
	for i, g := range form.GenderOptions {
		if g == state.Gender {
			genderCursor = i
		}
	}

	return FormModel{
		controller:   c,
		blurDelay:    opts.BlurDelay,
		hideHelp:     opts.HideHelp,
		username:     username,
		email:        email,
		languages:    languages,
		picker:       picker,
		focus:        focusUsername,
		genderCursor: genderCursor,
		Help:         help.New(),
		Keys:         newFormKeyMap(),
	}
}

// Init starts the cursor blink on the focused input
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form screen
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case blurExpiredMsg:
		if m.controller.ExpireTagBlur(msg.token) {
			m.suggestionCursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.picking {
			return m.handlePickerKey(msg)
		}
		return m.handleKey(msg)
	}

	// Cursor blinks and directory listings
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)
	if in := m.focusedInput(); in != nil {
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKey dispatches a key press to the focused widget
func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Submit):
		return m.submit()
	case key.Matches(msg, m.Keys.Next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.Keys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.Keys.Help) && m.focusedInput() == nil:
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	}

	switch m.focus {
	case focusUsername:
		return m.updateText(msg, form.FieldUsername)
	case focusEmail:
		return m.updateText(msg, form.FieldEmail)
	case focusGender:
		return m.updateGender(msg)
	case focusLanguages:
		return m.updateLanguages(msg)
	case focusImage:
		return m.updateImage(msg)
	case focusSubmit:
		switch {
		case key.Matches(msg, m.Keys.Choose):
			return m.submit()
		case key.Matches(msg, m.Keys.Up):
			return m.setFocus(focusImage)
		}
	}
	return m, nil
}

// updateText feeds a key to the focused plain text input and mirrors its
// value into the controller
func (m FormModel) updateText(msg tea.KeyMsg, field form.Field) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter, key.Matches(msg, m.Keys.Down):
		return m.setFocus(m.focus + 1)
	case key.Matches(msg, m.Keys.Up):
		if m.focus == focusUsername {
			return m, nil
		}
		return m.setFocus(m.focus - 1)
	}

	in := m.focusedInput()
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() != before {
		// Text fields accept any value; errors only change on submit
		_ = m.controller.SetField(field, in.Value())
	}
	return m, cmd
}

// updateGender handles the radio group
func (m FormModel) updateGender(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(form.GenderOptions)
	switch {
	case key.Matches(msg, m.Keys.Left):
		m.genderCursor = (m.genderCursor + n - 1) % n
	case key.Matches(msg, m.Keys.Right):
		m.genderCursor = (m.genderCursor + 1) % n
	case key.Matches(msg, m.Keys.Choose):
	case key.Matches(msg, m.Keys.Up):
		return m.setFocus(focusEmail)
	case key.Matches(msg, m.Keys.Down):
		return m.setFocus(focusLanguages)
	default:
		return m, nil
	}

	_ = m.controller.SetField(form.FieldGender, string(form.GenderOptions[m.genderCursor]))
	return m, nil
}

// updateLanguages handles typing and suggestion navigation in the languages field
func (m FormModel) updateLanguages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	suggestions := m.controller.Suggestions()

	if len(suggestions) > 0 {
		switch {
		case key.Matches(msg, m.Keys.Up):
			if m.suggestionCursor > 0 {
				m.suggestionCursor--
			}
			return m, nil
		case key.Matches(msg, m.Keys.Down):
			if m.suggestionCursor < len(suggestions)-1 {
				m.suggestionCursor++
			}
			return m, nil
		case msg.Type == tea.KeyEnter:
			cursor := min(m.suggestionCursor, len(suggestions)-1)
			m.acceptSuggestion(suggestions[cursor])
			return m, nil
		}
	} else {
		switch {
		case msg.Type == tea.KeyEnter, key.Matches(msg, m.Keys.Down):
			return m.setFocus(focusImage)
		case key.Matches(msg, m.Keys.Up):
			return m.setFocus(focusGender)
		}
	}

	before := m.languages.Value()
	var cmd tea.Cmd
	m.languages, cmd = m.languages.Update(msg)
	if m.languages.Value() != before {
		m.controller.OnTagTextChange(m.languages.Value())
		m.suggestionCursor = 0
	}
	return m, cmd
}

// acceptSuggestion commits tag and rewrites the input from the controller's buffer
func (m *FormModel) acceptSuggestion(tag string) {
	m.controller.AcceptSuggestion(tag)
	m.languages.SetValue(m.controller.TagBuffer())
	m.languages.CursorEnd()
	m.suggestionCursor = 0
}

// updateImage handles the image field when the picker is closed
func (m FormModel) updateImage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Browse):
		m.picking = true
		return m, m.picker.Init()
	case key.Matches(msg, m.Keys.Clear):
		_ = m.controller.SetField(form.FieldImage, "")
		m.imageErr = ""
	case key.Matches(msg, m.Keys.Up):
		return m.setFocus(focusLanguages)
	case key.Matches(msg, m.Keys.Down):
		return m.setFocus(focusSubmit)
	}
	return m, nil
}

// handlePickerKey routes keys to the open file picker
func (m FormModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Cancel) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.selectImage(path)
	} else if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.imageErr = "Cannot select " + path
	}
	return m, cmd
}

// selectImage stores a picked path, keeping the previous image on failure
func (m *FormModel) selectImage(path string) {
	m.picking = false
	if err := m.controller.SetField(form.FieldImage, path); err != nil {
		var fe *form.FieldError
		if errors.As(err, &fe) {
			m.imageErr = fe.Message
		} else {
			m.imageErr = err.Error()
		}
		return
	}
	m.imageErr = ""
}

// setFocus moves focus, starting the suggestion dismissal when leaving the
// languages field and cancelling it when returning
func (m FormModel) setFocus(target focusTarget) (tea.Model, tea.Cmd) {
	if target == m.focus || target < 0 || target >= focusCount {
		return m, nil
	}

	var cmds []tea.Cmd

	switch m.focus {
	case focusUsername:
		m.username.Blur()
	case focusEmail:
		m.email.Blur()
	case focusLanguages:
		m.languages.Blur()
		if token, pending := m.controller.BlurTags(); pending {
			cmds = append(cmds, blurAfter(m.blurDelay, token))
		}
	}

	m.focus = target

	switch target {
	case focusUsername:
		cmds = append(cmds, m.username.Focus())
	case focusEmail:
		cmds = append(cmds, m.email.Focus())
	case focusLanguages:
		m.controller.FocusTags()
		cmds = append(cmds, m.languages.Focus())
	}

	return m, tea.Batch(cmds...)
}

// submit validates the form. On failure focus jumps to the first failing field.
func (m FormModel) submit() (tea.Model, tea.Cmd) {
	result := m.controller.ValidateAndSubmit()
	if result.Submitted {
		m.Submitted = result.Submission
		return m, nil
	}
	if fields := result.Errors.Fields(); len(fields) > 0 {
		return m.setFocus(focusFor(fields[0]))
	}
	return m, nil
}

// focusedInput returns the focused text input, or nil
func (m *FormModel) focusedInput() *textinput.Model {
	switch m.focus {
	case focusUsername:
		return &m.username
	case focusEmail:
		return &m.email
	case focusLanguages:
		return &m.languages
	default:
		return nil
	}
}

// View renders the form screen
func (m FormModel) View() string {
	footer := ""
	if !m.hideHelp {
		footer = m.Help.View(m.Keys)
	}
	return RenderApplicationContainer(m.buildContent(), footer, m.Width, m.Height)
}

// buildContent renders every field with its inline error
func (m FormModel) buildContent() string {
	state := m.controller.State()
	errs := m.controller.Errors()

	var sections []string

	sections = append(sections, RenderTitle("Registration"))

	sections = append(sections, m.renderField(form.FieldUsername, focusUsername,
		m.renderInput(m.username, m.focus == focusUsername), errs))

	sections = append(sections, m.renderField(form.FieldEmail, focusEmail,
		m.renderInput(m.email, m.focus == focusEmail), errs))

	radios := make([]string, 0, len(form.GenderOptions))
	for i, g := range form.GenderOptions {
		radios = append(radios, RenderRadio(g.Label(), state.Gender == g, m.focus == focusGender && i == m.genderCursor))
	}
	sections = append(sections, m.renderField(form.FieldGender, focusGender,
		lipgloss.JoinHorizontal(lipgloss.Top, radios...), errs))

	languages := m.renderInput(m.languages, m.focus == focusLanguages)
	if list := m.renderSuggestions(); list != "" {
		languages = lipgloss.JoinVertical(lipgloss.Left, languages, list)
	}
	sections = append(sections, m.renderField(form.FieldLanguages, focusLanguages, languages, errs))

	sections = append(sections, m.renderField(form.FieldImage, focusImage, m.renderImage(state.Image), errs))

	sections = append(sections, "", RenderButton("Submit", m.focus == focusSubmit))

	return strings.Join(sections, "\n")
}

// renderField stacks a label, the widget and the field's error
func (m FormModel) renderField(field form.Field, target focusTarget, widget string, errs form.Errors) string {
	parts := []string{RenderLabel(field.Label(), m.focus == target), widget}
	if msg := errs.Get(field); msg != "" {
		parts = append(parts, RenderFieldError(msg))
	}
	return strings.Join(parts, "\n")
}

func (m FormModel) renderInput(in textinput.Model, focused bool) string {
	if focused {
		return FocusedInputBoxStyle.Render(in.View())
	}
	return InputBoxStyle.Render(in.View())
}

// renderSuggestions renders the dropdown, scrolled to keep the cursor visible.
// The list stays visible while a dismissal is pending.
func (m FormModel) renderSuggestions() string {
	suggestions := m.controller.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	cursor := min(m.suggestionCursor, len(suggestions)-1)
	start := 0
	if cursor >= MaxSuggestions {
		start = cursor - MaxSuggestions + 1
	}
	end := min(start+MaxSuggestions, len(suggestions))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		if i == cursor && m.focus == focusLanguages {
			rows = append(rows, SelectedSuggestionStyle.Render("→ "+suggestions[i]))
		} else {
			rows = append(rows, SuggestionItemStyle.Render(suggestions[i]))
		}
	}
	return SuggestionBoxStyle.Render(strings.Join(rows, "\n"))
}

// renderImage renders the current selection, or the picker while browsing
func (m FormModel) renderImage(img *form.FileHandle) string {
	if m.picking {
		return InputBoxStyle.Width(InputWidth + 16).Render(m.picker.View())
	}

	var line string
	if img != nil {
		line = SummaryValueStyle.Render(img.Name) + MutedStyle.Render(" ("+humanize.Bytes(uint64(img.Size))+")")
	} else {
		line = MutedStyle.Render("No file selected")
	}
	if m.focus == focusImage {
		line += MutedStyle.Render("  · enter to browse")
	}
	if m.imageErr != "" {
		line += "\n" + RenderFieldError(m.imageErr)
	}
	return "  " + line
}
