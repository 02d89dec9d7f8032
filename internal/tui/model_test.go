//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// MockTapeSource is a mock implementation of TapeSource.
type MockTapeSource struct{}

func (m *MockTapeSource) Read() (*progrock.StatusUpdate, error) {
	return nil, io.EOF
}

func ptr(s string) *string { return &s }

func TestModel_TapeUpdate_AddsVertex(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	_, cmd := m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "1", Name: "https://a.example.com/hosts"}},
	}})

	require.Len(t, m.vertices, 1)
	assert.Equal(t, "1", m.vertices[0].ID)
	assert.Equal(t, statusRunning, m.vertices[0].Status)
	assert.NotNil(t, cmd)
}

func TestModel_TapeUpdate_Completion(t *testing.T) {
	now := timestamppb.New(time.Now())

	tests := []struct {
		name   string
		vertex *progrock.Vertex
		status string
		log    string
	}{
		{"downloaded", &progrock.Vertex{Id: "1", Completed: now}, statusCompleted, ""},
		{"cached", &progrock.Vertex{Id: "1", Completed: now, Cached: true}, statusCached, ""},
		{"failed", &progrock.Vertex{Id: "1", Completed: now, Error: ptr("network error")}, statusFailed, "network error"},
		{"still running", &progrock.Vertex{Id: "1"}, statusRunning, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(&MockTapeSource{})
			m.vertices = []VertexState{{ID: "1", Name: "https://a.example.com/hosts", Status: statusRunning}}

			m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{Vertexes: []*progrock.Vertex{tt.vertex}}})

			assert.Equal(t, tt.status, m.vertices[0].Status)
			assert.Equal(t, tt.log, m.vertices[0].LastLog)
		})
	}
}

func TestModel_TapeUpdate_Logs(t *testing.T) {
	m := NewModel(&MockTapeSource{})
	m.vertices = []VertexState{{ID: "1", Name: "https://a.example.com/hosts", Status: statusRunning}}

	m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{
		Logs: []*progrock.VertexLog{
			{Vertex: "1", Data: []byte("update (etag changed)\ndownloaded 42 domains\n")},
			{Vertex: "unknown", Data: []byte("ignored\n")},
		},
	}})

	assert.Equal(t, "downloaded 42 domains", m.vertices[0].LastLog)
}

func TestModel_TapeEnded_Quits(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	_, cmd := m.Update(MsgTapeEnded{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestModel_View(t *testing.T) {
	m := NewModel(nil)
	m.width = 80
	m.height = 20
	m.vertices = []VertexState{
		{ID: "1", Name: "https://a.example.com/hosts", Status: statusRunning},
		{ID: "2", Name: "https://b.example.com/hosts", Status: statusCompleted, LastLog: "downloaded 3 domains"},
		{ID: "3", Name: "https://c.example.com/hosts", Status: statusCached},
		{ID: "4", Name: "https://d.example.com/hosts", Status: statusFailed, LastLog: "network error"},
	}

	output := m.View()

	assert.Contains(t, output, "Loading gravity sources... 3/4")
	assert.Contains(t, output, "a.example.com")
	assert.Contains(t, output, "b.example.com")
	assert.Contains(t, output, "downloaded 3 domains")
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "network error")
}

func TestModel_View_Overflow(t *testing.T) {
	m := NewModel(nil)
	m.height = 3
	m.vertices = []VertexState{
		{ID: "1", Name: "https://first.example.com/hosts", Status: statusCompleted},
		{ID: "2", Name: "https://second.example.com/hosts", Status: statusCompleted},
		{ID: "3", Name: "https://third.example.com/hosts", Status: statusRunning},
	}

	output := m.View()

	assert.NotContains(t, output, "first.example.com")
	assert.Contains(t, output, "second.example.com")
	assert.Contains(t, output, "third.example.com")
}

func TestRun_EndsWithTape(t *testing.T) {
	feed := NewFeed()
	require.NoError(t, feed.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "1", Name: "https://a.example.com/hosts"}},
	}))
	require.NoError(t, feed.Close())

	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), feed,
			tea.WithInput(nil),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
			tea.WithoutRenderer(),
		)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the tape ended")
	}
}
