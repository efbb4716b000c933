// Package tui renders the interactive chat: a scrolling history pane over a
// single input line, with bot replies typed out character by character. The
// model only presents; every conversation decision is the engine's.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moringa-school/karibu/internal/runtime"
	"github.com/moringa-school/karibu/pkg/dialog"
)

const (
	// DefaultTypingDelay is the pause between typed-out characters.
	DefaultTypingDelay = 5 * time.Millisecond
	// DefaultWordPause is the longer pause after a space.
	DefaultWordPause = 45 * time.Millisecond
)

// typeTickMsg advances the typing animation by one character.
type typeTickMsg struct{}

// Model is the bubbletea model for one chat session.
type Model struct {
	engine *runtime.Engine
	state  *dialog.State

	input    textinput.Model
	viewport viewport.Model

	// typedRunes is how much of the last history entry is shown; typing
	// is true while that entry is still being revealed.
	typing     bool
	typedRunes int

	typingDelay time.Duration
	wordPause   time.Duration

	width  int
	height int
	ready  bool

	// done means the conversation is over; the next Enter closes the UI.
	done     bool
	quitting bool
}

// NewModel starts a session on the engine and prepares the UI around it.
func NewModel(engine *runtime.Engine, typingDelay, wordPause time.Duration) Model {
	if typingDelay <= 0 {
		typingDelay = DefaultTypingDelay
	}
	if wordPause <= 0 {
		wordPause = DefaultWordPause
	}

	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Focus()

	state, res := engine.Start()

	return Model{
		engine:      engine,
		state:       state,
		input:       ti,
		typing:      len(state.History) > 0,
		typingDelay: typingDelay,
		wordPause:   wordPause,
		done:        res.Done,
	}
}

// State exposes the session state, mainly for the caller after the program
// finishes.
func (m Model) State() *dialog.State {
	return m.state
}

// Init begins cursor blinking and the first typing animation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.typeTick())
}

func (m Model) typeTick() tea.Cmd {
	return tea.Tick(m.nextDelay(), func(time.Time) tea.Msg {
		return typeTickMsg{}
	})
}

// nextDelay pauses longer after a space, which reads like word-by-word
// typing instead of a uniform drip.
func (m Model) nextDelay() time.Duration {
	runes := m.lastEntryRunes()
	if m.typedRunes > 0 && m.typedRunes <= len(runes) && runes[m.typedRunes-1] == ' ' {
		return m.wordPause
	}
	return m.typingDelay
}

func (m Model) lastEntryRunes() []rune {
	if len(m.state.History) == 0 {
		return nil
	}
	return []rune(m.state.History[len(m.state.History)-1].Text)
}

// Update handles input, resizes, and animation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := inputHeight + 1
		vpHeight := max(msg.Height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.input.Width = max(msg.Width-8, 10)
		m.refresh()
		return m, nil

	case typeTickMsg:
		if !m.typing {
			return m, nil
		}
		runes := m.lastEntryRunes()
		if m.typedRunes < len(runes) {
			m.typedRunes++
		}
		if m.typedRunes >= len(runes) {
			m.typing = false
		}
		m.refresh()
		if m.typing {
			return m, m.typeTick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyEnter:
		// The reply must finish typing before the next turn starts.
		if m.typing {
			return m, nil
		}
		if m.done {
			m.quitting = true
			return m, tea.Quit
		}
		return m.submit()

	default:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// submit feeds the input line to the engine and animates whatever came back.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	m.input.Reset()

	res := m.engine.Step(m.state, value)
	m.done = m.done || res.Done

	if last := m.lastEntryRunes(); len(last) > 0 {
		if entries := m.state.History; entries[len(entries)-1].Speaker == dialog.SpeakerBot {
			m.typing = true
			m.typedRunes = 0
		}
	}

	m.refresh()
	if m.typing {
		return m, m.typeTick()
	}
	return m, nil
}

// refresh re-renders the history pane and keeps it pinned to the bottom.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

// renderHistory lays out the transcript with a blank line whenever the
// speaker changes, the way a chat log reads.
func (m Model) renderHistory() string {
	wrap := lipgloss.NewStyle().Width(max(m.viewport.Width-2, 10))

	var sb strings.Builder
	entries := m.state.History
	for i, entry := range entries {
		if i > 0 && entries[i-1].Speaker != entry.Speaker {
			sb.WriteString("\n")
		}

		text := entry.Text
		if m.typing && i == len(entries)-1 {
			runes := []rune(text)
			text = string(runes[:min(m.typedRunes, len(runes))])
		}

		label := UserLabel.Render("You: ")
		if entry.Speaker == dialog.SpeakerBot {
			label = BotLabel.Render("Bot: ")
		}
		sb.WriteString(wrap.Render(label + text))
		sb.WriteString("\n")
	}
	return sb.String()
}

const inputHeight = 3

// View assembles the full-screen layout.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	header := Title.Render("Chat with Bot")
	input := InputFrame.Width(max(m.width-2, 12)).Render(m.input.View())

	hint := "Enter to send · Esc to quit"
	if m.done && !m.typing {
		hint = "Conversation ended. Press Enter to exit."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewport.View(),
		input,
		Hint.Render(hint),
	)
}
