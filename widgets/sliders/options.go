package sliders

import (
	"ugui/device"
	"ugui/gui"
)

type options struct {
	height, width int
	divisions     int
	legends       []string

	fg, bg, font, bd, slot device.Color

	callback gui.Callback
	args     []any
	value    float64
	active   bool
}

type Option func(*options)

func defaultOptions(height, width int) options {
	return options{
		height:    height,
		width:     width,
		divisions: 10,
		fg:        device.ColorDefault,
		bg:        device.ColorDefault,
		font:      device.ColorDefault,
		bd:        device.ColorDefault,
		slot:      device.ColorDefault,
		callback:  gui.Nop,
		active:    true,
	}
}

func Height(height int) Option { return func(o *options) { o.height = height } }

func Width(width int) Option { return func(o *options) { o.width = width } }

// Divisions sets the number of tick intervals. 0 draws no ticks.
func Divisions(n int) Option { return func(o *options) { o.divisions = n } }

func Legends(legends ...string) Option {
	return func(o *options) { o.legends = append([]string(nil), legends...) }
}

func FgColor(c device.Color) Option { return func(o *options) { o.fg = c } }

func BgColor(c device.Color) Option { return func(o *options) { o.bg = c } }

func FontColor(c device.Color) Option { return func(o *options) { o.font = c } }

func BdColor(c device.Color) Option { return func(o *options) { o.bd = c } }

func SlotColor(c device.Color) Option { return func(o *options) { o.slot = c } }

func Value(v float64) Option { return func(o *options) { o.value = v } }

func Active(active bool) Option { return func(o *options) { o.active = active } }

// OnChange registers the value change callback. Active sliders also run
// it once when construction completes.
func OnChange(cb gui.Callback, args ...any) Option {
	return func(o *options) {
		o.callback = cb
		o.args = append([]any{}, args...)
	}
}
