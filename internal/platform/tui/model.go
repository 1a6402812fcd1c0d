package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mars-rover/internal/rover"
)

// DefaultFPS is the replay speed in frames per second.
const DefaultFPS = 4

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	haltStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// ReplayConfig configures the replay viewer.
type ReplayConfig struct {
	Title string
	FPS   int
}

// ReplayModel is the Bubble Tea model that plays back a finished run one
// accepted command at a time. Frame 0 is the landing pose.
type ReplayModel struct {
	title    string
	fps      int
	result   rover.Result
	grid     rover.Grid
	frames   []rover.Pose
	cursor   int
	playing  bool
	keys     ReplayKeyMap
	help     help.Model
	quitting bool
}

// NewReplayModel creates a replay of res.
func NewReplayModel(res rover.Result, cfg ReplayConfig) ReplayModel {
	frames := make([]rover.Pose, 0, len(res.Steps)+1)
	frames = append(frames, res.Start.Pose())
	for _, s := range res.Steps {
		frames = append(frames, s.Pose)
	}

	fps := cfg.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}

	return ReplayModel{
		title:   cfg.Title,
		fps:     fps,
		result:  res,
		grid:    res.Start.Grid(),
		frames:  frames,
		playing: true,
		keys:    DefaultReplayKeyMap(),
		help:    help.New(),
	}
}

// Frame returns the index of the frame on screen.
func (m ReplayModel) Frame() int {
	return m.cursor
}

// Pose returns the pose on screen.
func (m ReplayModel) Pose() rover.Pose {
	return m.frames[m.cursor]
}

// Playing reports whether the replay advances on its own.
func (m ReplayModel) Playing() bool {
	return m.playing
}

// Done reports whether the last frame is on screen.
func (m ReplayModel) Done() bool {
	return m.cursor == len(m.frames)-1
}

// Init starts the tick loop.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ReplayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		if m.Done() {
			// Playing from the end starts over
			m.cursor = 0
		}
		m.playing = !m.playing
	case key.Matches(msg, m.keys.Next):
		m.playing = false
		if !m.Done() {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Prev):
		m.playing = false
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Restart):
		m.cursor = 0
		m.playing = true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleTick advances one frame while playing and keeps the tick loop alive.
func (m ReplayModel) handleTick() (tea.Model, tea.Cmd) {
	if m.playing {
		if m.Done() {
			m.playing = false
		} else {
			m.cursor++
		}
	}
	return m, tickCmd(m.fps)
}

// View renders the current state to a string for display.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	if m.title != "" {
		sb.WriteString(titleStyle.Render(m.title))
		sb.WriteString("\n\n")
	}
	sb.WriteString(RenderMap(m.grid, m.Pose()))
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render(m.statusLine()))
	sb.WriteString("\n")
	if m.Done() {
		sb.WriteString(m.outcomeLine())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// statusLine describes the frame on screen.
func (m ReplayModel) statusLine() string {
	last := len(m.frames) - 1
	if m.cursor == 0 {
		return fmt.Sprintf("step 0/%d  landed at %s", last, m.Pose())
	}
	step := m.result.Steps[m.cursor-1]
	return fmt.Sprintf("step %d/%d  %c %s  %s", m.cursor, last, step.Command.Rune(), step.Command, step.Pose)
}

// outcomeLine describes how the run ended.
func (m ReplayModel) outcomeLine() string {
	if c := m.result.Collision; c != nil {
		return haltStyle.Render(fmt.Sprintf("halted: %v (command %c at %d)", c, c.Command.Rune(), c.Index))
	}
	return doneStyle.Render("completed")
}

// RunReplay starts the Bubble Tea program for a replay of res.
func RunReplay(res rover.Result, cfg ReplayConfig) error {
	p := tea.NewProgram(
		NewReplayModel(res, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
