// Package framebuf keeps a display image in memory. Other devices render
// from it; tests inspect it directly.
package framebuf

import (
	"ugui/device"
)

type Buffer struct {
	size  device.Size
	pix   []device.Color
	texts []TextRun
	shown int
}

// TextRun is text placed with Display.Text. Runs are kept apart from the
// pixels because glyph rasterization belongs to the output device.
type TextRun struct {
	device.Position
	Text   string
	FG, BG device.Color
}

var _ device.Display = (*Buffer)(nil)

func New(width, height int, bg device.Color) *Buffer {
	b := &Buffer{size: device.Size{Width: width, Height: height}}
	b.pix = make([]device.Color, width*height)
	for i := range b.pix {
		b.pix[i] = bg
	}
	return b
}

func (b *Buffer) Size() device.Size {
	return b.size
}

func (b *Buffer) Pixel(x, y int) device.Color {
	if !b.inside(x, y) {
		return device.ColorDefault
	}
	return b.pix[y*b.size.Width+x]
}

func (b *Buffer) SetPixel(x, y int, color device.Color) {
	if b.inside(x, y) {
		b.pix[y*b.size.Width+x] = color
	}
}

func (b *Buffer) Texts() []TextRun {
	return append([]TextRun(nil), b.texts...)
}

// Shown reports how many times Show was called.
func (b *Buffer) Shown() int {
	return b.shown
}

// Line uses Bresenham's algorithm; both end points are drawn.
func (b *Buffer) Line(x0, y0, x1, y1 int, color device.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		b.SetPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (b *Buffer) FillRect(x, y, width, height int, color device.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, b.size.Width), min(y+height, b.size.Height)
	for row := y0; row < y1; row++ {
		line := b.pix[row*b.size.Width : (row+1)*b.size.Width]
		for col := x0; col < x1; col++ {
			line[col] = color
		}
	}
	b.eraseTexts(device.MakeRect(x, y, width, height))
}

func (b *Buffer) Rect(x, y, width, height int, color device.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	b.Line(x, y, x+width-1, y, color)
	b.Line(x, y+height-1, x+width-1, y+height-1, color)
	b.Line(x, y, x, y+height-1, color)
	b.Line(x+width-1, y, x+width-1, y+height-1, color)
}

// Text replaces any run starting at the same position.
func (b *Buffer) Text(x, y int, text string, fg, bg device.Color) {
	run := TextRun{Position: device.Position{X: x, Y: y}, Text: text, FG: fg, BG: bg}
	for i := range b.texts {
		if b.texts[i].Position == run.Position {
			b.texts[i] = run
			return
		}
	}
	b.texts = append(b.texts, run)
}

func (b *Buffer) Show() {
	b.shown++
}

func (b *Buffer) eraseTexts(rect device.Rect) {
	kept := b.texts[:0]
	for _, run := range b.texts {
		if !rect.Contains(run.X, run.Y) {
			kept = append(kept, run)
		}
	}
	b.texts = kept
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size.Width && y < b.size.Height
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
