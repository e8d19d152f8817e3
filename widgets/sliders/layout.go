package sliders

import (
	"math"
	"ugui/device"
)

const (
	slideDepth    = 6 // must be even
	tickVisible   = 3 // tick pixels visible either side of the thumb
	halfSlotWidth = 2
)

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	}
	return "UNKNOWN ORIENTATION"
}

type Segment struct {
	X0, Y0, X1, Y1 int
}

// Layout is the geometry of a slider. A vertical slider's value grows
// upwards, a horizontal one's to the right.
type Layout struct {
	Orientation Orientation
	Row, Col    int
	Height      int
	Width       int
	Divisions   int

	// Travel is the slot length, the distance the thumb covers from 0 to 1.
	Travel int
	Slot   device.Rect
}

func NewLayout(orientation Orientation, row, col, height, width, divisions int) Layout {
	l := Layout{
		Orientation: orientation,
		Row:         row,
		Col:         col,
		Height:      height,
		Width:       width,
		Divisions:   max(divisions, 0),
	}
	if orientation == Vertical {
		l.Travel = height - slideDepth - 1
		l.Slot = device.MakeRect(col+width/2-halfSlotWidth, row+slideDepth/2, 2*halfSlotWidth, l.Travel)
	} else {
		l.Travel = width - slideDepth - 1
		l.Slot = device.MakeRect(col+slideDepth/2, row+height/2-halfSlotWidth, l.Travel, 2*halfSlotWidth)
	}
	return l
}

// Ticks returns Divisions+1 evenly spaced tick lines, the first at the
// slot start and the last at the slot end. Ticks stick out of the thumb
// by tickVisible pixels on either side.
func (l Layout) Ticks() []Segment {
	if l.Divisions == 0 {
		return nil
	}
	step := float64(l.Travel) / float64(l.Divisions)
	ticks := make([]Segment, 0, l.Divisions+1)
	for i := 0; i <= l.Divisions; i++ {
		if l.Orientation == Vertical {
			y := int(float64(l.Slot.Y) + step*float64(i))
			ticks = append(ticks, Segment{X0: l.Col + 1, Y0: y, X1: l.Col + l.Width - 1, Y1: y})
		} else {
			x := int(float64(l.Slot.X) + step*float64(i))
			ticks = append(ticks, Segment{X0: x, Y0: l.Row + 1, X1: x, Y1: l.Row + l.Height - 1})
		}
	}
	return ticks
}

// ThumbOffset is the thumb's distance from its zero position. value is
// trusted to lie in [0, 1].
func (l Layout) ThumbOffset(value float64) int {
	return int(math.Round(value * float64(l.Travel)))
}

func (l Layout) Thumb(value float64) device.Rect {
	offset := l.ThumbOffset(value)
	if l.Orientation == Vertical {
		y0 := l.Row + l.Height - slideDepth - 1
		return device.MakeRect(l.Col+tickVisible, y0-offset, l.Width-2*tickVisible, slideDepth)
	}
	return device.MakeRect(l.Col+offset, l.Row+tickVisible, slideDepth, l.Height-2*tickVisible)
}
