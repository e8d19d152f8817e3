// Package gui holds the pieces every widget shares: the base widget with
// its clear-and-skip redraw gate, the linear value model, labels and the
// screen that owns the render list.
package gui

import (
	"ugui/device"
	"ugui/writer"
)

// Widget is an entry of a screen's render list.
type Widget interface {
	// Redraw repaints the widget. It leaves the widget dirty when it had to
	// skip drawing.
	Redraw()
	Dirty() bool
	Invalidate()
}

// Base is the bounding box, colors and redraw state of a widget.
type Base struct {
	screen *Screen
	writer *writer.Writer

	row, col      int
	height, width int

	fg, bg, bd device.Color

	visible bool
	dirty   bool
}

// NewBase fills unset fg and bg from the writer. An unset border color
// means no border. The widget starts visible and dirty.
func NewBase(scr *Screen, wri *writer.Writer, row, col, height, width int, fg, bg, bd device.Color) Base {
	return Base{
		screen:  scr,
		writer:  wri,
		row:     row,
		col:     col,
		height:  height,
		width:   width,
		fg:      fg.Or(wri.FgColor()),
		bg:      bg.Or(wri.BgColor()),
		bd:      bd,
		visible: true,
		dirty:   true,
	}
}

func (b *Base) Screen() *Screen { return b.screen }
func (b *Base) Writer() *writer.Writer { return b.writer }
func (b *Base) Row() int { return b.row }
func (b *Base) Col() int { return b.col }
func (b *Base) Height() int { return b.height }
func (b *Base) Width() int { return b.width }
func (b *Base) FgColor() device.Color { return b.fg }
func (b *Base) BgColor() device.Color { return b.bg }
func (b *Base) BdColor() device.Color { return b.bd }
func (b *Base) Bounds() device.Rect { return device.MakeRect(b.col, b.row, b.width, b.height) }
func (b *Base) Display() device.Display { return b.screen.Display() }
func (b *Base) Visible() bool { return b.visible }
func (b *Base) Dirty() bool { return b.dirty }
func (b *Base) Invalidate() { b.dirty = true }
func (b *Base) MarkClean() { b.dirty = false }
func (b *Base) SetFgColor(c device.Color) { b.fg = c }

func (b *Base) SetVisible(visible bool) {
	if b.visible != visible {
		b.visible = visible
		b.dirty = true
	}
}

// BaseShow clears the bounding box ahead of a detailed redraw. With clearBG
// the box takes the screen background, otherwise the widget's own bg.
// It returns false, touching nothing, when the widget is hidden.
func (b *Base) BaseShow(clearBG bool) bool {
	if !b.visible {
		return false
	}
	d := b.Display()
	if b.bd.IsSet() {
		d.Rect(b.col-2, b.row-2, b.width+4, b.height+4, b.bd)
	}
	color := b.bg
	if clearBG {
		color = b.screen.Background()
	}
	d.FillRect(b.col, b.row, b.width, b.height, color)
	return true
}
