package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termray/pkg/core"
	"termray/pkg/renderer"
	"termray/pkg/scene"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(scene.NewDefaultScene(), 30, renderer.DefaultMarchConfig())
	require.NoError(t, err)
	return m
}

func sized(t *testing.T, m *Model) *Model {
	t.Helper()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func keyPress(m *Model, key tea.KeyType) {
	m.Update(tea.KeyMsg{Type: key})
}

func TestNewModel_EmptySceneRejected(t *testing.T) {
	_, err := NewModel(&scene.Scene{}, 30, renderer.DefaultMarchConfig())
	require.ErrorIs(t, err, renderer.ErrEmptyScene)
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected renderer.Command
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, renderer.MoveUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, renderer.MoveDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, renderer.MoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, renderer.MoveRight},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, renderer.MoveForward},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, renderer.MoveBack},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, renderer.NoCommand},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, renderer.NoCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, commandFor(tt.msg))
		})
	}
}

func TestModel_CameraStartsAtOrigin(t *testing.T) {
	m := sized(t, newTestModel(t))
	assert.Equal(t, core.NewVec3(0, 0, 0), m.camera.Position())
}

func TestModel_FiveRightMovesCameraByFive(t *testing.T) {
	m := sized(t, newTestModel(t))
	for i := 0; i < 5; i++ {
		keyPress(m, tea.KeyRight)
	}
	assert.Equal(t, core.NewVec3(5, 0, 0), m.camera.Position())
}

func TestModel_UnknownKeysIgnored(t *testing.T) {
	m := sized(t, newTestModel(t))
	before := m.View()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, core.NewVec3(0, 0, 0), m.camera.Position())
	assert.Equal(t, before, m.View())
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m := sized(t, newTestModel(t))
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, "key %v should quit", key)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_ViewBeforeSizing(t *testing.T) {
	m := newTestModel(t)
	assert.NotEmpty(t, m.View())

	// Key presses before the first size message must not crash.
	keyPress(m, tea.KeyRight)
}

func TestModel_View(t *testing.T) {
	m := sized(t, newTestModel(t))
	view := m.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 24)

	// Status line reports the camera position over row 0.
	assert.Contains(t, lines[0], "(0, 0, 0)")

	// The sphere straight ahead shows up mid-screen.
	assert.NotEqual(t, strings.Repeat(" ", 80), lines[12])

	keyPress(m, tea.KeyRight)
	assert.Contains(t, strings.Split(m.View(), "\n")[0], "(1, 0, 0)")
}

func TestModel_ViewDeterministic(t *testing.T) {
	m := sized(t, newTestModel(t))
	first := m.View()

	// Re-rendering the same camera state yields the identical grid.
	m.render()
	assert.Equal(t, first, m.View())
}

func TestModel_ResizeKeepsPosition(t *testing.T) {
	m := sized(t, newTestModel(t))
	keyPress(m, tea.KeyRight)
	keyPress(m, tea.KeyPgUp)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})

	assert.Equal(t, core.NewVec3(1, 0, 1), m.camera.Position())
	assert.Equal(t, 40, m.camera.Width())
	assert.Equal(t, 12, m.camera.Height())
}

func TestFrame_OutOfRangeWritesDropped(t *testing.T) {
	f := NewFrame(4, 2)
	f.SetGlyph(-1, 0, 'x')
	f.SetGlyph(0, 4, 'x')
	f.SetGlyph(2, 0, 'x')
	f.SetGlyph(1, 3, 'M')

	assert.Equal(t, "    ", f.Row(0))
	assert.Equal(t, "   M", f.Row(1))
	assert.Equal(t, 'M', f.Glyph(1, 3))
}
