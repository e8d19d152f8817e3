package gui

import (
	"testing"
	"ugui/device"
	"ugui/device/devicetest"
	"ugui/writer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFont = writer.Font{Name: "test", Width: 6, Height: 10}

// knob is the smallest possible linear control.
type knob struct {
	LinearIO
	redraws int
}

func newKnob(scr *Screen, wri *writer.Writer, value float64, active bool, cb Callback, args ...any) *knob {
	k := &knob{LinearIO: NewLinearIO(scr, wri, 10, 20, 30, 40, device.ColorDefault, device.ColorDefault, device.ColorDefault, value, active)}
	k.Bind(k, cb, args)
	scr.Add(k)
	return k
}

func (k *knob) Redraw() {
	if !k.BaseShow(false) {
		return
	}
	k.redraws++
	k.MarkClean()
}

func (k *knob) SetColor(c device.Color) {
	k.SetFgColor(c)
}

func setup() (*devicetest.Recorder, *Screen, *writer.Writer) {
	rec := devicetest.NewRecorder(320, 240)
	return rec, NewScreen(rec, device.Black), writer.New(testFont, device.White, device.Navy)
}

func TestBaseDefaults(t *testing.T) {
	_, scr, wri := setup()
	b := NewBase(scr, wri, 1, 2, 3, 4, device.ColorDefault, device.ColorDefault, device.ColorDefault)
	assert.Equal(t, device.White, b.FgColor())
	assert.Equal(t, device.Navy, b.BgColor())
	assert.False(t, b.BdColor().IsSet())
	assert.True(t, b.Dirty())
	assert.True(t, b.Visible())
	assert.Equal(t, device.MakeRect(2, 1, 4, 3), b.Bounds())

	b = NewBase(scr, wri, 1, 2, 3, 4, device.Red, device.Green, device.Blue)
	assert.Equal(t, device.Red, b.FgColor())
	assert.Equal(t, device.Green, b.BgColor())
	assert.Equal(t, device.Blue, b.BdColor())
}

func TestBaseShow(t *testing.T) {
	rec, scr, wri := setup()
	b := NewBase(scr, wri, 10, 20, 30, 40, device.ColorDefault, device.Green, device.ColorDefault)

	assert.True(t, b.BaseShow(false))
	assert.Equal(t, []devicetest.Op{
		{Kind: devicetest.OpFillRect, Args: []int{20, 10, 40, 30}, Color: device.Green},
	}, rec.Ops)

	rec.Reset()
	assert.True(t, b.BaseShow(true))
	assert.Equal(t, device.Black, rec.Ops[0].Color)
}

func TestBaseShowBorder(t *testing.T) {
	rec, scr, wri := setup()
	b := NewBase(scr, wri, 10, 20, 30, 40, device.ColorDefault, device.Green, device.Red)
	assert.True(t, b.BaseShow(false))
	assert.Equal(t, []devicetest.Op{
		{Kind: devicetest.OpRect, Args: []int{18, 8, 44, 34}, Color: device.Red},
		{Kind: devicetest.OpFillRect, Args: []int{20, 10, 40, 30}, Color: device.Green},
	}, rec.Ops)
}

func TestBaseShowHiddenSkips(t *testing.T) {
	rec, scr, wri := setup()
	b := NewBase(scr, wri, 10, 20, 30, 40, device.ColorDefault, device.ColorDefault, device.ColorDefault)
	b.MarkClean()
	b.SetVisible(false)
	assert.True(t, b.Dirty())
	assert.False(t, b.BaseShow(false))
	assert.Empty(t, rec.Ops)
	assert.True(t, b.Dirty())
}

func TestSetValueClampsAndCallsBack(t *testing.T) {
	_, scr, wri := setup()
	var calls []float64
	var gotArgs []any
	k := newKnob(scr, wri, 0.25, true, func(c LinearControl, args []any) {
		calls = append(calls, c.Value())
		gotArgs = args
	}, "a", 1)
	k.MarkClean()

	assert.Equal(t, 0.25, k.SetValue(0.25))
	assert.Empty(t, calls)
	assert.False(t, k.Dirty())

	assert.Equal(t, 1.0, k.SetValue(3))
	assert.True(t, k.Dirty())
	assert.Equal(t, 0.0, k.SetValue(-1))
	assert.Equal(t, []float64{1, 0}, calls)
	assert.Equal(t, []any{"a", 1}, gotArgs)
}

func TestInitialValueClamped(t *testing.T) {
	_, scr, wri := setup()
	assert.Equal(t, 1.0, newKnob(scr, wri, 1.5, true, nil).Value())
	assert.Equal(t, 0.0, newKnob(scr, wri, -0.5, true, nil).Value())
}

func TestAdjust(t *testing.T) {
	_, scr, wri := setup()
	k := newKnob(scr, wri, 0.5, true, nil)
	assert.InDelta(t, 0.6, k.Adjust(0.1), 1e-9)
	assert.Equal(t, 1.0, k.Adjust(1))

	inactive := newKnob(scr, wri, 0.5, false, nil)
	assert.Equal(t, 0.5, inactive.Adjust(0.1))
}

func TestCallbackArgsNotShared(t *testing.T) {
	_, scr, wri := setup()
	args := []any{"x"}
	var got [][]any
	cb := func(_ LinearControl, a []any) { got = append(got, a) }
	k1 := newKnob(scr, wri, 0, true, cb, args...)
	k2 := newKnob(scr, wri, 0, true, cb)
	args[0] = "y"
	k1.SetValue(1)
	k2.SetValue(1)
	require.Len(t, got, 2)
	assert.Equal(t, []any{"x"}, got[0])
	assert.Empty(t, got[1])
}

func TestLabel(t *testing.T) {
	rec, scr, wri := setup()
	l := NewLabel(scr, wri, 5, 7, "10", device.Yellow)
	assert.Len(t, scr.Widgets(), 1)
	assert.Equal(t, 12, l.Width())
	assert.Equal(t, 10, l.Height())

	l.Redraw()
	assert.False(t, l.Dirty())
	assert.Equal(t, []devicetest.Op{
		{Kind: devicetest.OpFillRect, Args: []int{7, 5, 12, 10}, Color: device.Navy},
		{Kind: devicetest.OpText, Args: []int{7, 5}, Color: device.Yellow, BG: device.Navy, Text: "10"},
	}, rec.Ops)

	l.SetText("100")
	assert.True(t, l.Dirty())
	assert.Equal(t, 18, l.Width())
	l.SetText("1")
	assert.Equal(t, 18, l.Width())
	assert.Equal(t, "1", l.Text())
}

func TestRefresh(t *testing.T) {
	rec, scr, wri := setup()
	k := newKnob(scr, wri, 0, true, nil)
	NewLabel(scr, wri, 0, 0, "x", device.ColorDefault)

	assert.Equal(t, 2, scr.Refresh())
	assert.Equal(t, devicetest.OpShow, rec.Ops[len(rec.Ops)-1].Kind)
	assert.Equal(t, 1, k.redraws)

	rec.Reset()
	assert.Equal(t, 0, scr.Refresh())
	assert.Equal(t, []devicetest.OpKind{devicetest.OpShow}, rec.Kinds())

	k.SetVisible(false)
	assert.Equal(t, 0, scr.Refresh())
	assert.True(t, k.Dirty())
}

// appender adds a label to the screen the first time it is drawn.
type appender struct {
	Base
}

func (a *appender) Redraw() {
	NewLabel(a.screen, a.writer, 0, 0, "late", device.ColorDefault)
	a.MarkClean()
}

func TestRefreshDrawsWidgetsAddedDuringPass(t *testing.T) {
	rec, scr, wri := setup()
	a := &appender{Base: NewBase(scr, wri, 0, 0, 1, 1, device.ColorDefault, device.ColorDefault, device.ColorDefault)}
	scr.Add(a)
	assert.Equal(t, 2, scr.Refresh())
	assert.Equal(t, 1, rec.Count(devicetest.OpText))
}

func TestInvalidateAll(t *testing.T) {
	rec, scr, wri := setup()
	k := newKnob(scr, wri, 0, true, nil)
	scr.Refresh()
	rec.Reset()

	scr.InvalidateAll()
	assert.True(t, k.Dirty())
	assert.Equal(t, []devicetest.Op{
		{Kind: devicetest.OpFillRect, Args: []int{0, 0, 320, 240}, Color: device.Black},
	}, rec.Ops)
}
