// ABOUTME: tea.Model wrapper around Host with keyboard scrolling and a pluggable key handler
// ABOUTME: Run starts the program in the alternate screen with cell-motion mouse reporting

package teahost

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to keys the model does not consume itself. It returns
// true when it handled the key.
type KeyHandler func(h *Host, msg tea.KeyMsg) (tea.Cmd, bool)

// Model drives a Host from a Bubble Tea program.
type Model struct {
	host *Host
	keys KeyHandler
}

// NewModel wraps h. keys may be nil.
func NewModel(h *Host, keys KeyHandler) Model {
	return Model{host: h, keys: keys}
}

// Host returns the wrapped host.
func (m Model) Host() *Host { return m.host }

// Init flushes timers scheduled before the program started.
func (m Model) Init() tea.Cmd {
	return m.host.Flush()
}

// Update routes keys first, then hands everything else to the host.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return m, m.key(key)
	}
	return m, m.host.Update(msg)
}

func (m Model) key(msg tea.KeyMsg) tea.Cmd {
	if m.keys != nil {
		if cmd, ok := m.keys(m.host, msg); ok {
			return tea.Batch(cmd, m.host.Flush())
		}
	}
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		m.host.ScrollBy(-1)
	case "down", "j":
		m.host.ScrollBy(1)
	case "pgup":
		m.host.ScrollBy(-m.host.vp.Height)
	case "pgdown", " ":
		m.host.ScrollBy(m.host.vp.Height)
	case "home", "g":
		m.host.ScrollTo(0)
	case "end", "G":
		m.host.ScrollTo(m.host.DocumentHeight())
	}
	return m.host.Flush()
}

// View renders the composed screen.
func (m Model) View() string { return m.host.View() }

// Run blocks until the program exits or ctx is cancelled. ready, when not
// nil, receives the program before it starts so other goroutines can Send.
func Run(ctx context.Context, m Model, ready func(*tea.Program), opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)
	p := tea.NewProgram(m, opts...)
	if ready != nil {
		ready(p)
	}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
