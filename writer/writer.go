package writer

import (
	"ugui/device"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Font describes a monospaced font by the pixel size of one column.
type Font struct {
	Name   string
	Width  int
	Height int
}

// CellFont fits one terminal cell rendered with half blocks.
var CellFont = Font{Name: "cell", Width: 1, Height: 2}

// Writer carries a font and its default colors.
type Writer struct {
	font   Font
	fg, bg device.Color
}

func New(font Font, fg, bg device.Color) *Writer {
	return &Writer{font: font, fg: fg, bg: bg}
}

func (w *Writer) Font() Font {
	return w.font
}

func (w *Writer) Height() int {
	return w.font.Height
}

func (w *Writer) FgColor() device.Color {
	return w.fg
}

func (w *Writer) BgColor() device.Color {
	return w.bg
}

// StringLen returns the rendered width of text in pixels. East Asian wide
// runes take two columns.
func (w *Writer) StringLen(text string) int {
	return runewidth.StringWidth(norm.NFC.String(text)) * w.font.Width
}

// Print places text with its top left corner at (row, col). Unset colors
// fall back to the writer's own.
func (w *Writer) Print(d device.Display, row, col int, text string, fg, bg device.Color) {
	d.Text(col, row, norm.NFC.String(text), fg.Or(w.fg), bg.Or(w.bg))
}
