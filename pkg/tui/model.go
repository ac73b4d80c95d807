// Package tui runs the interactive terminal front end: it owns the
// screen, translates key presses into camera commands, and re-renders
// the scene after every command. One full frame is drawn per input;
// there is no animation clock.
package tui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"termray/pkg/core"
	"termray/pkg/renderer"
	"termray/pkg/scene"
)

// Model is the bubbletea model for the renderer. The camera is built
// on the first WindowSizeMsg, which bubbletea delivers before any key
// input, and rebuilt at the current position when the terminal
// resizes.
type Model struct {
	scene    *scene.Scene
	renderer *renderer.Renderer
	fov      float64
	camera   *renderer.Camera
	frame    *Frame
}

// NewModel creates the front-end model. The scene must have at least
// one surface.
func NewModel(s *scene.Scene, fov float64, march renderer.MarchConfig) (*Model, error) {
	r, err := renderer.New(s)
	if err != nil {
		return nil, err
	}
	r.SetMarchConfig(march)
	return &Model{
		scene:    s,
		renderer: r,
		fov:      fov,
	}, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.render()

	case tea.KeyMsg:
		if isQuit(msg) {
			return m, tea.Quit
		}
		if m.camera == nil {
			return m, nil
		}
		if cmd := commandFor(msg); cmd != renderer.NoCommand {
			m.camera.Apply(cmd)
			m.render()
		}
	}
	return m, nil
}

// View implements tea.Model. The coordinate status line is drawn over
// the start of row 0, with the rest of the frame untouched.
func (m *Model) View() string {
	if m.frame == nil || m.camera.Height() == 0 {
		return "sizing terminal..."
	}

	status := statusLine(m.camera.Position())
	var b strings.Builder
	b.WriteString(termenv.String(status).Faint().String())
	row0 := []rune(m.frame.Row(0))
	if len(status) < len(row0) {
		b.WriteString(string(row0[len(status):]))
	}
	for row := 1; row < m.camera.Height(); row++ {
		b.WriteByte('\n')
		b.WriteString(m.frame.Row(row))
	}
	return b.String()
}

// resize rebuilds the camera and frame for a new terminal size,
// keeping the camera position. The first call places the camera at the
// world origin.
func (m *Model) resize(width, height int) {
	position := core.NewVec3(0, 0, 0)
	if m.camera != nil {
		position = m.camera.Position()
	}
	m.camera = renderer.NewCamera(renderer.CameraConfig{
		Width:  width,
		Height: height,
		FOV:    m.fov,
	}, position)
	m.frame = NewFrame(width, height)
	log.Printf("sized camera to %dx%d, fov %g", width, height, m.fov)
}

func (m *Model) render() {
	if m.camera == nil || m.camera.Width() == 0 || m.camera.Height() == 0 {
		return
	}
	m.renderer.RenderFrame(m.camera, m.frame)
}

func statusLine(position core.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", position.X, position.Y, position.Z)
}
