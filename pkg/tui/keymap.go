package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"termray/pkg/renderer"
)

// commandFor maps a key press to a camera movement command. Keys with
// no mapping yield NoCommand and are ignored, matching the input
// contract: unrecognized input does nothing.
func commandFor(msg tea.KeyMsg) renderer.Command {
	switch msg.String() {
	case "up":
		return renderer.MoveUp
	case "down":
		return renderer.MoveDown
	case "left":
		return renderer.MoveLeft
	case "right":
		return renderer.MoveRight
	case "pgup":
		return renderer.MoveForward
	case "pgdown":
		return renderer.MoveBack
	}
	return renderer.NoCommand
}

// isQuit reports whether a key press ends the program
func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return true
	}
	return false
}
