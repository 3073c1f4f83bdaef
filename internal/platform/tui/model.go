package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// Model is the Bubble Tea model that runs the scene loop.
// Key events arrive between ticks and only update the held-key state;
// each TickMsg samples that state and simulates exactly one frame.
type Model struct {
	scene     *dodge.Scene
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *core.KeyState
	keyMapper *KeyMapper
	frame     uint64 // Last simulated frame
	err       error  // Draw failure that ended the loop
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(scene *dodge.Scene, cfg core.RuntimeConfig, holdFrames int) Model {
	return Model{
		scene:     scene,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      core.NewKeyState(holdFrames),
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the scene and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.scene.Reset(m.config)

	return tea.Batch(
		tea.SetWindowTitle(m.scene.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		// Releases are never reported, so drop held keys when focus leaves
		m.keys.Release()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToState(msg, m.keys, m.frame+1) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick simulates and renders one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame++

	intent := m.keys.Intent(m.frame)
	m.scene.Step(intent)

	if err := m.scene.Render(m.screen); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View presents the last rendered frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// Frame returns the number of frames simulated.
func (m Model) Frame() uint64 {
	return m.frame
}

// Quitting reports whether the loop has terminated.
func (m Model) Quitting() bool {
	return m.quitting
}
