// Package devicetest provides a display that records the primitives it is
// asked to draw.
package devicetest

import (
	"fmt"
	"ugui/device"
)

type OpKind int

const (
	OpLine OpKind = iota
	OpFillRect
	OpRect
	OpText
	OpShow
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "Line"
	case OpFillRect:
		return "FillRect"
	case OpRect:
		return "Rect"
	case OpText:
		return "Text"
	case OpShow:
		return "Show"
	}
	return "UNKNOWN OP"
}

// Op is one recorded primitive. For lines Args holds x0, y0, x1, y1; for
// rectangles x, y, width, height; for text x, y.
type Op struct {
	Kind  OpKind
	Args  []int
	Color device.Color
	BG    device.Color
	Text  string
}

func (op Op) String() string {
	if op.Kind == OpText {
		return fmt.Sprintf("%s%v %q %s/%s", op.Kind, op.Args, op.Text, op.Color, op.BG)
	}
	return fmt.Sprintf("%s%v %s", op.Kind, op.Args, op.Color)
}

type Recorder struct {
	Width, Height int
	Ops           []Op
}

var _ device.Display = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() device.Size {
	return device.Size{Width: r.Width, Height: r.Height}
}

func (r *Recorder) Line(x0, y0, x1, y1 int, color device.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Args: []int{x0, y0, x1, y1}, Color: color})
}

func (r *Recorder) FillRect(x, y, width, height int, color device.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Args: []int{x, y, width, height}, Color: color})
}

func (r *Recorder) Rect(x, y, width, height int, color device.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Args: []int{x, y, width, height}, Color: color})
}

func (r *Recorder) Text(x, y int, text string, fg, bg device.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Args: []int{x, y}, Color: fg, BG: bg, Text: text})
}

func (r *Recorder) Show() {
	r.Ops = append(r.Ops, Op{Kind: OpShow})
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Kinds lists the kinds of the recorded ops in order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) OfKind(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}
