// Package app runs a screen of sliders: one goroutine applies events,
// then refreshes the dirty widgets.
package app

import (
	"log"
	"ugui/config"
	"ugui/device"
	"ugui/gui"
	"ugui/writer"
)

// Step is how far one key press moves the focused slider.
const Step = 0.05

var focusColor = device.Yellow

type resizer interface {
	Resize() device.Size
}

type App struct {
	screen   *gui.Screen
	controls []control
	focus    int
	quit     bool
}

// New builds the sliders of a validated layout on a screen over display.
func New(display device.Display, layout *config.Layout) *App {
	f := layout.Font
	fg := config.MustColor(layout.Foreground).Or(device.White)
	bg := config.MustColor(layout.Background).Or(device.Black)
	wri := writer.New(writer.Font{Name: f.Name, Width: f.Width, Height: f.Height}, fg, bg)
	screen := gui.NewScreen(display, bg)

	size := display.Size()
	display.FillRect(0, 0, size.Width, size.Height, bg)

	app := &App{screen: screen, controls: build(screen, wri, layout)}
	app.setFocus(0)
	return app
}

func (app *App) Screen() *gui.Screen {
	return app.screen
}

func (app *App) Focused() gui.LinearControl {
	if len(app.controls) == 0 {
		return nil
	}
	return app.controls[app.focus].LinearControl
}

func (app *App) Quit() bool {
	return app.quit
}

// Run refreshes the screen after every event until asked to quit or the
// event channel closes.
func (app *App) Run(events <-chan any) {
	app.screen.Refresh()
	for !app.quit {
		event, ok := <-events
		if !ok {
			return
		}
		app.HandleEvent(event)
		app.screen.Refresh()
	}
}

func (app *App) HandleEvent(event any) {
	switch event := event.(type) {
	case device.KeyEvent:
		app.handleKeyEvent(event)

	case device.ResizeEvent:
		if r, ok := app.screen.Display().(resizer); ok {
			r.Resize()
		}
		app.screen.InvalidateAll()

	default:
		log.Panicf("### unhandled event: %#v", event)
	}
}

func (app *App) handleKeyEvent(key device.KeyEvent) {
	switch key.Name {
	case "Ctrl+C", "Esc", "Rune[q]":
		app.quit = true
		return
	}

	focused := app.Focused()
	if focused == nil {
		return
	}
	switch key.Name {
	case "Tab":
		app.setFocus(app.focus + 1)

	case "Backtab":
		app.setFocus(app.focus - 1)

	case "Up", "Right", "Rune[+]":
		focused.Adjust(Step)

	case "Down", "Left", "Rune[-]":
		focused.Adjust(-Step)

	case "Home":
		focused.SetValue(0)

	case "End":
		focused.SetValue(1)
	}
}

// setFocus moves the focus, wrapping around, and shows it by painting the
// focused slider in focusColor.
func (app *App) setFocus(idx int) {
	n := len(app.controls)
	if n == 0 {
		return
	}
	app.controls[app.focus].SetColor(app.controls[app.focus].fg)
	app.focus = (idx%n + n) % n
	app.controls[app.focus].SetColor(focusColor)
}
