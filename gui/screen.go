package gui

import (
	"ugui/device"
)

// Screen owns a display and the render list of the widgets placed on it.
// Widgets are only ever appended.
type Screen struct {
	display device.Display
	bg      device.Color
	widgets []Widget
}

func NewScreen(display device.Display, bg device.Color) *Screen {
	return &Screen{display: display, bg: bg}
}

func (s *Screen) Display() device.Display {
	return s.display
}

func (s *Screen) Background() device.Color {
	return s.bg
}

func (s *Screen) Add(w Widget) {
	s.widgets = append(s.widgets, w)
}

func (s *Screen) Widgets() []Widget {
	return append([]Widget(nil), s.widgets...)
}

// Refresh redraws the dirty widgets in render list order and shows the
// display. Widgets appended while refreshing are drawn in the same pass.
// It returns the number of widgets that were redrawn.
func (s *Screen) Refresh() int {
	redrawn := 0
	for i := 0; i < len(s.widgets); i++ {
		w := s.widgets[i]
		if !w.Dirty() {
			continue
		}
		w.Redraw()
		if !w.Dirty() {
			redrawn++
		}
	}
	s.display.Show()
	return redrawn
}

// InvalidateAll blanks the display and marks every widget dirty, as needed
// after a resize.
func (s *Screen) InvalidateAll() {
	size := s.display.Size()
	s.display.FillRect(0, 0, size.Width, size.Height, s.bg)
	for _, w := range s.widgets {
		w.Invalidate()
	}
}
