// Command sliders shows a screen of sliders in the terminal.
//
//	sliders [-sim] [layout.yaml|layout.toml]
//
// Tab moves the focus, arrows move the focused slider, q quits. With -sim
// the screen is drawn once to stdout.
package main

import (
	"log"
	"os"
	"ugui/app"
	"ugui/config"
	"ugui/device"
	"ugui/device/framebuf"
	"ugui/device/tcell"
	"ugui/device/term"
	"ugui/lifecycle"

	"github.com/muesli/termenv"
)

const (
	simWidth  = 80
	simHeight = 80
)

func main() {
	log.SetFlags(0)

	sim := false
	path := ""
	for _, arg := range os.Args[1:] {
		if arg == "-sim" {
			sim = true
		} else {
			path = arg
		}
	}

	layout, err := loadLayout(path)
	if err != nil {
		log.Printf("Invalid layout: %v", err)
		os.Exit(1)
	}

	if sim {
		err = runSim(layout)
	} else {
		err = runTerminal(layout)
	}
	if err != nil {
		log.Printf("sliders: %v", err)
		os.Exit(1)
	}
}

func loadLayout(path string) (*config.Layout, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

func runSim(layout *config.Layout) error {
	fb := framebuf.New(simWidth, simHeight, device.Black)
	a := app.New(fb, layout)
	a.Screen().Refresh()

	profile := termenv.EnvColorProfile()
	if err := term.Caption(os.Stdout, "sliders", simWidth, profile); err != nil {
		return err
	}
	return term.Dump(os.Stdout, fb, profile)
}

func runTerminal(layout *config.Layout) error {
	logFile, err := os.OpenFile("sliders.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	lc := lifecycle.New()
	events := make(chan any)
	d, err := tcell.NewDevice(lc, events, config.MustColor(layout.Background).Or(device.Black))
	if err != nil {
		log.Printf("Failed to open terminal: %#v", err)
		return err
	}
	defer func() {
		d.Stop()
		lc.Stop()
	}()

	app.New(d, layout).Run(events)
	return nil
}
