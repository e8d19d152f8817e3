// Package term writes a framebuffer to a terminal stream as half block
// lines with termenv color sequences. It serves non-interactive output
// where the tcell device cannot take over the terminal.
package term

import (
	"bufio"
	"io"
	"strings"
	"ugui/device"
	"ugui/device/framebuf"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
)

type cell struct {
	r      rune
	fg, bg device.Color
	skip   bool
}

// Dump writes one line per two pixel rows. Text runs overlay the pixels.
func Dump(w io.Writer, b *framebuf.Buffer, profile termenv.Profile) error {
	grid := cells(b)
	bw := bufio.NewWriter(w)
	for _, line := range grid {
		for _, c := range line {
			if c.skip {
				continue
			}
			bw.WriteString(styled(profile, string(c.r), c.fg, c.bg))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Caption writes text in bold, centered over width columns.
func Caption(w io.Writer, text string, width int, profile termenv.Profile) error {
	title := profile.String(text).Bold().String()
	pad := max(0, (width-ansi.PrintableRuneWidth(title))/2)
	_, err := io.WriteString(w, strings.Repeat(" ", pad)+title+"\n")
	return err
}

func cells(b *framebuf.Buffer) [][]cell {
	size := b.Size()
	grid := make([][]cell, (size.Height+1)/2)
	for y := range grid {
		grid[y] = make([]cell, size.Width)
		for x := range grid[y] {
			top, bottom := b.Pixel(x, 2*y), b.Pixel(x, 2*y+1)
			if !bottom.IsSet() {
				bottom = top
			}
			if top == bottom {
				grid[y][x] = cell{r: ' ', fg: top, bg: top}
			} else {
				grid[y][x] = cell{r: '▀', fg: top, bg: bottom}
			}
		}
	}
	for _, run := range b.Texts() {
		y := run.Y / 2
		if run.Y < 0 || y >= len(grid) {
			continue
		}
		x := run.X
		for _, r := range run.Text {
			rw := runewidth.RuneWidth(r)
			if x >= 0 && x+rw <= size.Width {
				grid[y][x] = cell{r: r, fg: run.FG, bg: run.BG}
				for i := 1; i < rw; i++ {
					grid[y][x+i].skip = true
				}
			}
			x += rw
		}
	}
	return grid
}

func styled(profile termenv.Profile, s string, fg, bg device.Color) string {
	style := profile.String(s)
	if fg.IsSet() {
		style = style.Foreground(profile.Color(fg.Hex()))
	}
	if bg.IsSet() {
		style = style.Background(profile.Color(bg.Hex()))
	}
	return style.String()
}
