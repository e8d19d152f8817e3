package gui

import (
	"ugui/device"
	"ugui/writer"
)

type Label struct {
	Base
	text string
}

// NewLabel creates a label and appends it to the screen's render list.
func NewLabel(scr *Screen, wri *writer.Writer, row, col int, text string, fg device.Color) *Label {
	l := &Label{
		Base: NewBase(scr, wri, row, col, wri.Height(), wri.StringLen(text), fg, device.ColorDefault, device.ColorDefault),
		text: text,
	}
	scr.Add(l)
	return l
}

func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text. The box only grows, so a shorter text still
// blanks what the longer one covered.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.width = max(l.width, l.writer.StringLen(text))
	l.Invalidate()
}

func (l *Label) Redraw() {
	if !l.BaseShow(false) {
		return
	}
	l.writer.Print(l.Display(), l.row, l.col, l.text, l.fg, l.bg)
	l.MarkClean()
}
