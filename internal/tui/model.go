package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/ui/style"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusCached    = "cached"
	statusFailed    = "failed"
)

// VertexState is the displayed state of one source.
type VertexState struct {
	ID      string
	Name    string
	Status  string
	LastLog string
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	cached    lipgloss.Style
	failed    lipgloss.Style
	detail    lipgloss.Style
}

// Model is the Bubble Tea model listing every source of a run.
type Model struct {
	tape     TapeSource
	vertices []VertexState
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
}

// NewModel creates a new TUI model with the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Yellow)

	return &Model{
		tape:    tape,
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(style.Yellow),
			completed: lipgloss.NewStyle().Foreground(style.Green),
			cached:    lipgloss.NewStyle().Foreground(style.Muted),
			failed:    lipgloss.NewStyle().Foreground(style.Red),
			detail:    lipgloss.NewStyle().Foreground(style.Muted),
		},
	}
}

// Run displays the model until the tape ends or the user quits.
func Run(ctx context.Context, tape TapeSource, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(NewModel(tape), opts...).Run()
	return err
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.apply(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) apply(update *progrock.StatusUpdate) {
	if update == nil {
		return
	}
	for _, v := range update.Vertexes {
		i := m.index(v.Id)
		if i < 0 {
			m.vertices = append(m.vertices, VertexState{ID: v.Id, Name: v.Name, Status: statusRunning})
			i = len(m.vertices) - 1
		}
		switch {
		case v.Completed != nil && v.Error != nil:
			m.vertices[i].Status = statusFailed
			m.vertices[i].LastLog = v.GetError()
		case v.Completed != nil && v.Cached:
			m.vertices[i].Status = statusCached
		case v.Completed != nil:
			m.vertices[i].Status = statusCompleted
		}
	}
	for _, l := range update.Logs {
		i := m.index(l.Vertex)
		if i < 0 {
			continue
		}
		if line := lastLine(l.Data); line != "" {
			m.vertices[i].LastLog = line
		}
	}
}

func (m *Model) index(id string) int {
	for i, v := range m.vertices {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	done := 0
	for _, v := range m.vertices {
		if v.Status != statusRunning {
			done++
		}
	}
	fmt.Fprintf(&s, "Loading gravity sources... %d/%d\n", done, len(m.vertices))

	// Keep the newest sources visible when the list overflows the window.
	start := 0
	if rows := m.height - 1; rows > 0 && len(m.vertices) > rows {
		start = len(m.vertices) - rows
	}

	for _, v := range m.vertices[start:] {
		var icon string
		var st lipgloss.Style
		switch v.Status {
		case statusRunning:
			icon = m.spinner.View()
			st = m.styles.running
		case statusCompleted:
			icon = style.Check
			st = m.styles.completed
		case statusCached:
			icon = style.Bullet
			st = m.styles.cached
		default:
			icon = style.Cross
			st = m.styles.failed
		}

		line := fmt.Sprintf("%s %s", st.Render(icon), domain.HostOf(v.Name))
		if v.LastLog != "" {
			line += " " + m.styles.detail.Render(v.LastLog)
		}
		s.WriteString(line + "\n")
	}

	return s.String()
}

func lastLine(data []byte) string {
	data = bytes.TrimRight(data, "\n")
	if i := bytes.LastIndexByte(data, '\n'); i >= 0 {
		data = data[i+1:]
	}
	return strings.TrimSpace(string(data))
}
