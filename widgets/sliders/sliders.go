// Package sliders provides linear "potentiometer" widgets. A slider's
// legends lie outside its bounding box, the area sensitive to touch.
//
// Sliders never read back the framebuffer: every redraw blanks the box and
// paints ticks, slot and thumb again, thumb last.
package sliders

import (
	"ugui/device"
	"ugui/gui"
	"ugui/writer"
)

// Slider is a vertical slider; its value grows upwards.
type Slider struct {
	slider
}

// HorizSlider is a horizontal slider; its value grows to the right.
type HorizSlider struct {
	slider
}

// NewSlider creates a vertical slider, 100 by 20 pixels unless told
// otherwise. The width is truncated to an even number.
func NewSlider(scr *gui.Screen, wri *writer.Writer, row, col int, opts ...Option) *Slider {
	o := defaultOptions(100, 20)
	for _, opt := range opts {
		opt(&o)
	}
	o.width &^= 1
	s := &Slider{slider: newSlider(Vertical, scr, wri, row, col, o)}
	s.register(s, o)
	return s
}

// NewHorizSlider creates a horizontal slider, 20 by 100 pixels unless told
// otherwise. The height is truncated to an even number.
func NewHorizSlider(scr *gui.Screen, wri *writer.Writer, row, col int, opts ...Option) *HorizSlider {
	o := defaultOptions(20, 100)
	for _, opt := range opts {
		opt(&o)
	}
	o.height &^= 1
	s := &HorizSlider{slider: newSlider(Horizontal, scr, wri, row, col, o)}
	s.register(s, o)
	return s
}

type slider struct {
	gui.LinearIO
	layout    Layout
	legends   []string
	fontcolor device.Color
	slotcolor device.Color

	// drawn keeps legend labels from being added to the render list twice.
	drawn bool
}

func newSlider(orientation Orientation, scr *gui.Screen, wri *writer.Writer, row, col int, o options) slider {
	s := slider{
		LinearIO: gui.NewLinearIO(scr, wri, row, col, o.height, o.width, o.fg, o.bg, o.bd, o.value, o.active),
		layout:   NewLayout(orientation, row, col, o.height, o.width, o.divisions),
		legends:  o.legends,
	}
	s.fontcolor = o.font.Or(s.FgColor())
	s.slotcolor = o.slot.Or(s.BgColor())
	return s
}

// register binds the owning control, puts it on the screen and, if the
// slider is active, runs the callback so it can set dynamic colors.
func (s *slider) register(owner gui.LinearControl, o options) {
	if o.active {
		s.Bind(owner, o.callback, o.args)
	} else {
		s.Bind(owner, nil, nil)
	}
	s.Screen().Add(owner)
	if o.active {
		s.RunCallback()
	}
}

func (s *slider) Layout() Layout { return s.layout }
func (s *slider) Divisions() int { return s.layout.Divisions }
func (s *slider) Legends() []string { return append([]string(nil), s.legends...) }
func (s *slider) FontColor() device.Color { return s.fontcolor }
func (s *slider) SlotColor() device.Color { return s.slotcolor }
func (s *slider) Drawn() bool { return s.drawn }

// Redraw paints ticks, slot, legends on the first pass only, then the
// thumb. Nothing happens, and the slider stays dirty, when the base
// widget skips drawing.
func (s *slider) Redraw() {
	if !s.BaseShow(false) {
		return
	}
	d := s.Display()
	fg := s.FgColor()

	for _, tick := range s.layout.Ticks() {
		d.Line(tick.X0, tick.Y0, tick.X1, tick.Y1, fg)
	}

	slot := s.layout.Slot
	d.FillRect(slot.X, slot.Y, slot.Width, slot.Height, s.slotcolor)
	d.Rect(slot.X, slot.Y, slot.Width, slot.Height, fg)

	// Once drawn, labels stay on the screen's render list.
	if len(s.legends) > 0 && !s.drawn {
		wri := s.Writer()
		for i, pos := range s.layout.LegendPositions(s.legends, wri) {
			gui.NewLabel(s.Screen(), wri, pos.Y, pos.X, s.legends[i], s.fontcolor)
		}
	}

	thumb := s.layout.Thumb(s.Value())
	d.FillRect(thumb.X, thumb.Y, thumb.Width, thumb.Height, fg)

	s.drawn = true
	s.MarkClean()
}

// SetColor changes the foreground color. Setting the current color does
// not schedule a redraw.
func (s *slider) SetColor(c device.Color) {
	if c != s.FgColor() {
		s.SetFgColor(c)
		s.Invalidate()
	}
}
