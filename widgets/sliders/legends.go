package sliders

import (
	"ugui/device"
)

// Metrics measures rendered text.
type Metrics interface {
	StringLen(text string) int
	Height() int
}

// LegendAnchors spreads count anchors over length, the first at 0 and the
// last at length. With one legend or none every anchor is 0.
func LegendAnchors(count, length int) []float64 {
	anchors := make([]float64, count)
	if count <= 1 {
		return anchors
	}
	step := float64(length) / float64(count-1)
	for i := range anchors {
		anchors[i] = step * float64(i)
	}
	return anchors
}

// LegendPositions returns the top left corner of each legend label.
// Vertical legends sit right of the box, bottom to top, centered on their
// anchor by half the font height. Horizontal legends sit above the box,
// left to right, centered by half their width.
func (l Layout) LegendPositions(legends []string, m Metrics) []device.Position {
	anchors := LegendAnchors(len(legends), l.Travel)
	positions := make([]device.Position, len(legends))
	for i, legend := range legends {
		if l.Orientation == Vertical {
			bottom := float64(l.Slot.Y + l.Travel)
			positions[i] = device.Position{
				X: l.Col + l.Width + 4,
				Y: int(bottom - anchors[i] - float64(m.Height())/2),
			}
		} else {
			positions[i] = device.Position{
				X: int(float64(l.Slot.X) + anchors[i] - float64(m.StringLen(legend))/2),
				Y: l.Row - m.Height() - 4,
			}
		}
	}
	return positions
}
