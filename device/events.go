package device

// KeyEvent is a key press. Name follows tcell's key names, e.g. "Up",
// "Tab", "Ctrl+C" or "Rune[q]".
type KeyEvent struct {
	Name string
	Rune rune
}

// ResizeEvent carries the new display size in pixels.
type ResizeEvent struct {
	Width  int
	Height int
}
