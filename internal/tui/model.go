// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomtom215/cinegraph/internal/recommend"
	"github.com/tomtom215/cinegraph/internal/search"
)

// screen identifies which view the session UI is showing.
type screen int

const (
	screenMenu screen = iota
	screenLogin
	screenWatch
	screenRecommendations
	screenSimilar
)

// maxCompletions caps the title suggestions shown under the watch prompt.
const maxCompletions = 5

// menu entries in display order.
var menuEntries = []string{
	"Log in",
	"Mark a movie as watched",
	"Get recommendations",
	"Show similar users",
	"Log out",
	"Quit",
}

// Messages.
type (
	recommendationsMsg struct {
		recs []recommend.Recommendation
		err  error
	}
	similarUsersMsg struct {
		similar []recommend.SimilarUser
		err     error
	}
)

// Model is the bubbletea model driving one interactive session. It calls
// only the session state machine's operations and presents its named error
// conditions; all engine access goes through the session.
type Model struct {
	session *recommend.Session
	index   *search.Index
	styles  *Styles

	screen  screen
	cursor  int
	input   textinput.Model
	spinner spinner.Model
	loading bool

	// status is the one-line feedback under the menu: login results,
	// watch confirmations, and the named error conditions.
	status   string
	statusOK bool

	recs    []recommend.Recommendation
	similar []recommend.SimilarUser

	width, height int
	quitting      bool
}

// NewModel builds the session UI over a logged-out session and a title
// index for watch-prompt completion.
func NewModel(session *recommend.Session, index *search.Index) *Model {
	styles := DefaultStyles()

	ti := textinput.New()
	ti.Prompt = styles.Prompt.Render("> ")
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return &Model{
		session: session,
		index:   index,
		styles:  styles,
		input:   ti,
		spinner: sp,
	}
}

// Run starts the interactive session UI.
func Run(session *recommend.Session, index *search.Index) error {
	p := tea.NewProgram(NewModel(session, index), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("session ui: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model interface required by tea.Program
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case recommendationsMsg:
		m.loading = false
		if msg.err != nil {
			m.setError(msg.err)
			m.screen = screenMenu
			return m, nil
		}
		m.recs = msg.recs
		m.screen = screenRecommendations
		return m, nil

	case similarUsersMsg:
		m.loading = false
		if msg.err != nil {
			m.setError(msg.err)
			m.screen = screenMenu
			return m, nil
		}
		m.similar = msg.similar
		m.screen = screenSimilar
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

// updateKey routes key input to the active screen.
func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model interface required by tea.Program
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenLogin, screenWatch:
		return m.updatePrompt(msg)
	case screenRecommendations, screenSimilar:
		// Any key returns to the menu.
		m.screen = screenMenu
		return m, nil
	}
	return m, nil
}

// updateMenu handles menu navigation and selection.
func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model interface required by tea.Program
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case "enter":
		return m.selectEntry()
	}
	return m, nil
}

// selectEntry acts on the highlighted menu entry.
func (m *Model) selectEntry() (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model interface required by tea.Program
	m.status = ""

	switch m.cursor {
	case 0: // log in
		m.screen = screenLogin
		m.input.Placeholder = `user id, or "new"`
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case 1: // mark watched
		m.screen = screenWatch
		m.input.Placeholder = "movie title"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case 2: // recommendations
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetchRecommendations())

	case 3: // similar users
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetchSimilarUsers())

	case 4: // log out
		m.session.Logout()
		m.setInfo("logged out")
		return m, nil

	case 5: // quit
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// updatePrompt handles the login and watch text prompts.
func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model interface required by tea.Program
	switch msg.Type {
	case tea.KeyEscape:
		m.screen = screenMenu
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		if m.screen == screenLogin {
			m.submitLogin(value)
		} else {
			m.submitWatch(value)
		}
		m.screen = screenMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitLogin runs the session login and reports the outcome.
func (m *Model) submitLogin(arg string) {
	if arg == "" {
		m.setWarn("enter a user id or \"new\"")
		return
	}
	user, err := m.session.Login(arg)
	if err != nil {
		m.setError(err)
		return
	}
	m.setInfo(fmt.Sprintf("logged in as user %d (%d watched)", user.ID, user.WatchedCount()))
}

// submitWatch records a watched title and reports the outcome.
func (m *Model) submitWatch(title string) {
	if title == "" {
		m.setWarn("enter a movie title")
		return
	}
	if err := m.session.RecordWatched(title); err != nil {
		m.setError(err)
		return
	}
	m.setInfo(fmt.Sprintf("recorded %q as watched", title))
}

// fetchRecommendations asks the session for recommendations off the UI
// loop.
func (m *Model) fetchRecommendations() tea.Cmd {
	return func() tea.Msg {
		recs, err := m.session.Recommendations()
		return recommendationsMsg{recs: recs, err: err}
	}
}

// fetchSimilarUsers asks the session for the similarity ranking.
func (m *Model) fetchSimilarUsers() tea.Cmd {
	return func() tea.Msg {
		similar, err := m.session.SimilarUsers(0)
		return similarUsersMsg{similar: similar, err: err}
	}
}

// setError translates the session's named error conditions into user-facing
// feedback. Contract violations and lookup failures read differently so
// "not logged in" can never be mistaken for "nothing found".
func (m *Model) setError(err error) {
	switch {
	case errors.Is(err, recommend.ErrNoActiveUser):
		m.status = m.styles.Error.Render("not logged in: log in first")
	case errors.Is(err, recommend.ErrUserNotFound):
		m.status = m.styles.Error.Render("user not found: try another id or \"new\"")
	case errors.Is(err, recommend.ErrMovieNotFound):
		m.status = m.styles.Error.Render("movie not found in the catalog")
	default:
		m.status = m.styles.Error.Render(err.Error())
	}
	m.statusOK = false
}

func (m *Model) setInfo(text string) {
	m.status = m.styles.OK.Render(text)
	m.statusOK = true
}

func (m *Model) setWarn(text string) {
	m.status = m.styles.Warn.Render(text)
	m.statusOK = false
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("CineGraph"))
	b.WriteString("  ")
	b.WriteString(m.styles.Dim.Render(m.sessionLine()))
	b.WriteString("\n\n")

	switch m.screen {
	case screenMenu:
		m.viewMenu(&b)
	case screenLogin:
		b.WriteString(m.styles.Header.Render("Log in"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Dim.Render("enter to confirm, esc to cancel"))
	case screenWatch:
		m.viewWatch(&b)
	case screenRecommendations:
		m.viewRecommendations(&b)
	case screenSimilar:
		m.viewSimilar(&b)
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Dim.Render(" working..."))
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	return b.String()
}

// sessionLine summarizes the login state for the header.
func (m *Model) sessionLine() string {
	if user, ok := m.session.ActiveUser(); ok {
		return fmt.Sprintf("user %d · %d watched", user.ID, user.WatchedCount())
	}
	return "logged out"
}

func (m *Model) viewMenu(b *strings.Builder) {
	for i, entry := range menuEntries {
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(m.styles.Pointer + " " + entry))
		} else {
			b.WriteString(m.styles.Item.Render("  " + entry))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("↑/↓ move · enter select · q quit"))
}

func (m *Model) viewWatch(b *strings.Builder) {
	b.WriteString(m.styles.Header.Render("Mark a movie as watched"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Title completion from the prefix index.
	if prefix := strings.TrimSpace(m.input.Value()); prefix != "" && m.index != nil {
		for _, match := range m.index.Complete(prefix, maxCompletions) {
			b.WriteString(m.styles.Muted.Render("  " + match.Title))
			b.WriteString("\n")
		}
	}
	b.WriteString(m.styles.Dim.Render("enter to confirm, esc to cancel"))
}

func (m *Model) viewRecommendations(b *strings.Builder) {
	b.WriteString(m.styles.Header.Render("Recommended for you"))
	b.WriteString("\n")
	if len(m.recs) == 0 {
		b.WriteString(m.styles.Dim.Render("no recommendations yet: watch a few movies first"))
	}
	for i, rec := range m.recs {
		line := fmt.Sprintf("%2d. %s", i+1, rec.Title)
		if rec.Genre != "" {
			line += m.styles.Dim.Render(" · " + rec.Genre)
		}
		b.WriteString(m.styles.Item.Render(line))
		b.WriteString("  ")
		b.WriteString(m.styles.Score.Render(fmt.Sprintf("%.2f", rec.Score)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("any key to go back"))
}

func (m *Model) viewSimilar(b *strings.Builder) {
	b.WriteString(m.styles.Header.Render("Users with similar taste"))
	b.WriteString("\n")
	if len(m.similar) == 0 {
		b.WriteString(m.styles.Dim.Render("no overlapping watch history with anyone yet"))
	}
	for _, su := range m.similar {
		b.WriteString(m.styles.Item.Render(fmt.Sprintf("user %d", su.UserID)))
		b.WriteString("  ")
		b.WriteString(m.styles.Score.Render(fmt.Sprintf("%.3f", su.Similarity)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("any key to go back"))
}
