package tcell

import (
	"log"
	"ugui/device"
	"ugui/lifecycle"

	"github.com/gdamore/tcell/v2"
)

// pollEvents forwards translated screen events until the screen is
// finalized or the lifecycle stops.
func (d *tcellDevice) pollEvents(lc *lifecycle.Lifecycle, events chan<- any) {
	defer lc.Done()
	for !lc.ShouldStop() {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		event := uiEvent(ev)
		if event == nil {
			continue
		}
		select {
		case events <- event:
		case <-lc.Stopped():
			return
		}
	}
}

func uiEvent(ev tcell.Event) any {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return device.ResizeEvent{Width: w, Height: h * 2}

	case *tcell.EventKey:
		log.Printf("key: name=%v rune=%q mod=%v", ev.Name(), ev.Rune(), ev.Modifiers())
		return device.KeyEvent{Name: ev.Name(), Rune: ev.Rune()}

	default:
		return nil
	}
}
