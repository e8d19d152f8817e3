package app

import (
	"log"
	"ugui/config"
	"ugui/device"
	"ugui/gui"
	"ugui/widgets/sliders"
	"ugui/writer"
)

type control struct {
	name string
	fg   device.Color
	gui.LinearControl
}

// build places the sliders of a validated layout on scr.
func build(scr *gui.Screen, wri *writer.Writer, layout *config.Layout) []control {
	controls := make([]control, 0, len(layout.Sliders))
	for _, s := range layout.Sliders {
		opts := sliderOptions(s)
		var c gui.LinearControl
		switch s.Kind {
		case config.KindVertical:
			c = sliders.NewSlider(scr, wri, s.Row, s.Col, opts...)
		case config.KindHorizontal:
			c = sliders.NewHorizSlider(scr, wri, s.Row, s.Col, opts...)
		default:
			log.Panicf("### unknown slider kind %q", s.Kind)
		}
		controls = append(controls, control{name: s.Name, fg: config.MustColor(s.FgColor).Or(wri.FgColor()), LinearControl: c})
	}
	return controls
}

func sliderOptions(s config.Slider) []sliders.Option {
	opts := []sliders.Option{
		sliders.Value(s.Value),
		sliders.FgColor(config.MustColor(s.FgColor)),
		sliders.BgColor(config.MustColor(s.BgColor)),
		sliders.FontColor(config.MustColor(s.FontColor)),
		sliders.BdColor(config.MustColor(s.BdColor)),
		sliders.SlotColor(config.MustColor(s.SlotColor)),
		sliders.OnChange(logValue, s.Name),
	}
	if s.Height > 0 {
		opts = append(opts, sliders.Height(s.Height))
	}
	if s.Width > 0 {
		opts = append(opts, sliders.Width(s.Width))
	}
	if s.Divisions != nil {
		opts = append(opts, sliders.Divisions(*s.Divisions))
	}
	if len(s.Legends) > 0 {
		opts = append(opts, sliders.Legends(s.Legends...))
	}
	if s.Active != nil {
		opts = append(opts, sliders.Active(*s.Active))
	}
	return opts
}

func logValue(c gui.LinearControl, args []any) {
	log.Printf("%v: value=%.3f", args[0], c.Value())
}
