package gui

import (
	"ugui/device"
	"ugui/writer"
)

// Callback runs when a linear control changes value. It receives the
// owning control and the arguments registered with it.
type Callback func(c LinearControl, args []any)

func Nop(LinearControl, []any) {}

// LinearControl is a widget holding a normalized value in [0, 1].
type LinearControl interface {
	Widget
	BaseShow(clearBG bool) bool
	Value() float64
	SetValue(v float64) float64
	Adjust(delta float64) float64
	SetColor(c device.Color)
	Active() bool
}

// LinearIO is embedded by linear controls. It stores the value and the
// callback; the embedding control binds itself as owner so the callback
// sees the full control.
type LinearIO struct {
	Base
	owner    LinearControl
	value    float64
	active   bool
	callback Callback
	args     []any
}

func NewLinearIO(scr *Screen, wri *writer.Writer, row, col, height, width int, fg, bg, bd device.Color, value float64, active bool) LinearIO {
	return LinearIO{
		Base:     NewBase(scr, wri, row, col, height, width, fg, bg, bd),
		value:    clamp(value),
		active:   active,
		callback: Nop,
	}
}

// Bind registers the owning control and its callback. args are copied.
func (l *LinearIO) Bind(owner LinearControl, callback Callback, args []any) {
	l.owner = owner
	if callback == nil {
		callback = Nop
	}
	l.callback = callback
	l.args = append([]any{}, args...)
}

func (l *LinearIO) RunCallback() {
	l.callback(l.owner, l.args)
}

func (l *LinearIO) Active() bool {
	return l.active
}

func (l *LinearIO) Value() float64 {
	return l.value
}

// SetValue stores v clamped to [0, 1]. A change marks the control dirty
// and runs the callback.
func (l *LinearIO) SetValue(v float64) float64 {
	v = clamp(v)
	if v != l.value {
		l.value = v
		l.Invalidate()
		l.RunCallback()
	}
	return l.value
}

// Adjust moves the value by delta, as an encoder step would. Inactive
// controls ignore it.
func (l *LinearIO) Adjust(delta float64) float64 {
	if !l.active {
		return l.value
	}
	return l.SetValue(l.value + delta)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
