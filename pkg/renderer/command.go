package renderer

// Command is a discrete camera movement instruction from the input
// source. One command moves the camera one world unit; there is no
// acceleration or repeat handling.
type Command int

const (
	// NoCommand is an unrecognized or ignored input
	NoCommand Command = iota
	MoveUp             // toward negative Y
	MoveDown           // toward positive Y
	MoveLeft           // toward negative X
	MoveRight          // toward positive X
	MoveForward        // toward positive Z (page up)
	MoveBack           // toward negative Z (page down)
)
