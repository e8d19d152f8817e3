package device

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Display is a pixel-addressable surface. Coordinates are pixels with the
// origin at the top left corner. Primitives never fail; anything outside
// the surface is clipped.
type Display interface {
	Size() Size
	Line(x0, y0, x1, y1 int, color Color)
	FillRect(x, y, width, height int, color Color)
	Rect(x, y, width, height int, color Color)
	Text(x, y int, text string, fg, bg Color)
	Show()
}

type Position struct {
	X int
	Y int
}

type Size struct {
	Width  int
	Height int
}

type Rect struct {
	Position
	Size
}

func MakeRect(x, y, width, height int) Rect {
	return Rect{Position{X: x, Y: y}, Size{Width: width, Height: height}}
}

func (r Rect) Contains(x, y int) bool {
	return r.X <= x && r.X+r.Width > x &&
		r.Y <= y && r.Y+r.Height > y
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(X: %d, Y: %d, Width: %d, Height: %d)", r.X, r.Y, r.Width, r.Height)
}

// Color is a 24 bit RGB value. ColorDefault marks an unset color.
type Color int32

const ColorDefault Color = -1

const (
	Black  Color = 0x000000
	White  Color = 0xffffff
	Red    Color = 0xff0000
	Green  Color = 0x00ff00
	Blue   Color = 0x0000ff
	Yellow Color = 0xffff00
	Grey   Color = 0x646464
	Navy   Color = 0x001040
)

func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b))
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) IsSet() bool {
	return c >= 0
}

// Or returns c when it is set and fallback otherwise.
func (c Color) Or(fallback Color) Color {
	if c.IsSet() {
		return c
	}
	return fallback
}

func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func (c Color) Hex() string {
	if !c.IsSet() {
		return ""
	}
	return c.Colorful().Hex()
}

func (c Color) String() string {
	if !c.IsSet() {
		return "ColorDefault"
	}
	return c.Hex()
}
