// Package tcell shows a framebuffer on a terminal. Every cell holds two
// vertically stacked pixels drawn with an upper half block.
package tcell

import (
	"ugui/device"
	"ugui/device/framebuf"
	"ugui/lifecycle"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type tcellDevice struct {
	*framebuf.Buffer
	screen tcell.Screen
	bg     device.Color
}

var _ device.Display = (*tcellDevice)(nil)

// NewDevice takes over the terminal and starts forwarding key and resize
// events to events until lc is stopped.
func NewDevice(lc *lifecycle.Lifecycle, events chan<- any, bg device.Color) (*tcellDevice, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	d := NewDeviceWithScreen(screen, bg)

	lc.Started()
	go d.pollEvents(lc, events)

	return d, nil
}

// NewDeviceWithScreen wraps an initialized screen without polling it.
func NewDeviceWithScreen(screen tcell.Screen, bg device.Color) *tcellDevice {
	screen.SetStyle(tcell.StyleDefault.Background(color(bg)))
	d := &tcellDevice{screen: screen, bg: bg}
	d.Resize()
	return d
}

// Resize matches the framebuffer to the screen and clears it.
func (d *tcellDevice) Resize() device.Size {
	w, h := d.screen.Size()
	d.Buffer = framebuf.New(w, h*2, d.bg)
	d.screen.Clear()
	return d.Buffer.Size()
}

func (d *tcellDevice) Show() {
	size := d.Buffer.Size()
	for y := 0; y < size.Height/2; y++ {
		for x := 0; x < size.Width; x++ {
			top, bottom := d.Pixel(x, 2*y), d.Pixel(x, 2*y+1)
			if top == bottom {
				d.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(color(top)))
			} else {
				d.screen.SetContent(x, y, '▀', nil, tcell.StyleDefault.Foreground(color(top)).Background(color(bottom)))
			}
		}
	}
	for _, run := range d.Texts() {
		style := tcell.StyleDefault.Foreground(color(run.FG)).Background(color(run.BG))
		x := run.X
		for _, r := range run.Text {
			d.screen.SetContent(x, run.Y/2, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}
	d.Buffer.Show()
	d.screen.Show()
}

func (d *tcellDevice) Sync() {
	d.screen.Sync()
}

func (d *tcellDevice) Stop() {
	d.screen.Fini()
}

func color(c device.Color) tcell.Color {
	if !c.IsSet() {
		return tcell.ColorReset
	}
	return tcell.NewHexColor(int32(c))
}
