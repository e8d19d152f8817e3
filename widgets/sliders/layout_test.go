package sliders

import (
	"testing"
	"ugui/device"
	"ugui/writer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerticalLayout(t *testing.T) {
	l := NewLayout(Vertical, 10, 20, 100, 20, 10)
	assert.Equal(t, 93, l.Travel)
	assert.Equal(t, device.MakeRect(28, 13, 4, 93), l.Slot)
}

func TestHorizontalLayout(t *testing.T) {
	l := NewLayout(Horizontal, 30, 10, 20, 107, 4)
	assert.Equal(t, 100, l.Travel)
	assert.Equal(t, device.MakeRect(13, 38, 100, 4), l.Slot)
}

func TestVerticalTicks(t *testing.T) {
	l := NewLayout(Vertical, 10, 20, 100, 20, 10)
	ticks := l.Ticks()
	require.Len(t, ticks, 11)
	ys := make([]int, len(ticks))
	for i, tick := range ticks {
		assert.Equal(t, 21, tick.X0)
		assert.Equal(t, 39, tick.X1)
		assert.Equal(t, tick.Y0, tick.Y1)
		ys[i] = tick.Y0
	}
	assert.Equal(t, []int{13, 22, 31, 40, 50, 59, 68, 78, 87, 96, 106}, ys)
	assert.Equal(t, l.Slot.Y, ys[0])
	assert.Equal(t, l.Slot.Y+l.Travel, ys[10])
}

func TestHorizontalTicks(t *testing.T) {
	l := NewLayout(Horizontal, 30, 10, 20, 107, 4)
	assert.Equal(t, []Segment{
		{X0: 13, Y0: 31, X1: 13, Y1: 49},
		{X0: 38, Y0: 31, X1: 38, Y1: 49},
		{X0: 63, Y0: 31, X1: 63, Y1: 49},
		{X0: 88, Y0: 31, X1: 88, Y1: 49},
		{X0: 113, Y0: 31, X1: 113, Y1: 49},
	}, l.Ticks())
}

func TestNoTicks(t *testing.T) {
	assert.Empty(t, NewLayout(Vertical, 0, 0, 100, 20, 0).Ticks())
	l := NewLayout(Horizontal, 0, 0, 20, 100, -3)
	assert.Equal(t, 0, l.Divisions)
	assert.Empty(t, l.Ticks())
	assert.Equal(t, 93, l.Travel)
}

func TestThumbOffset(t *testing.T) {
	for _, travel := range []int{1, 7, 50, 93, 255} {
		l := NewLayout(Vertical, 0, 0, travel+slideDepth+1, 20, 10)
		require.Equal(t, travel, l.Travel)
		for i := 0; i <= 100; i++ {
			v := float64(i) / 100
			offset := l.ThumbOffset(v)
			assert.GreaterOrEqual(t, offset, 0)
			assert.LessOrEqual(t, offset, travel)
		}
		assert.Equal(t, 0, l.ThumbOffset(0))
		assert.Equal(t, travel, l.ThumbOffset(1))
	}
	assert.Equal(t, 47, NewLayout(Vertical, 0, 0, 100, 20, 10).ThumbOffset(0.5))
}

func TestVerticalThumb(t *testing.T) {
	l := NewLayout(Vertical, 10, 20, 100, 20, 10)
	assert.Equal(t, device.MakeRect(23, 103, 14, 6), l.Thumb(0))
	assert.Equal(t, device.MakeRect(23, 56, 14, 6), l.Thumb(0.5))
	assert.Equal(t, device.MakeRect(23, 10, 14, 6), l.Thumb(1))
}

func TestHorizontalThumb(t *testing.T) {
	l := NewLayout(Horizontal, 30, 10, 20, 107, 4)
	assert.Equal(t, device.MakeRect(10, 33, 6, 14), l.Thumb(0))
	assert.Equal(t, device.MakeRect(35, 33, 6, 14), l.Thumb(0.25))
	assert.Equal(t, device.MakeRect(110, 33, 6, 14), l.Thumb(1))
}

func TestLegendAnchors(t *testing.T) {
	assert.Empty(t, LegendAnchors(0, 100))
	assert.Equal(t, []float64{0}, LegendAnchors(1, 100))
	assert.Equal(t, []float64{0, 50, 100}, LegendAnchors(3, 100))
	assert.Equal(t, []float64{0, 31, 62, 93}, LegendAnchors(4, 93))

	for k := 2; k <= 12; k++ {
		anchors := LegendAnchors(k, 93)
		require.Len(t, anchors, k)
		for i, a := range anchors {
			assert.InDelta(t, float64(i)*93/float64(k-1), a, 1e-9)
		}
		assert.InDelta(t, 93, anchors[k-1], 1e-9)
	}
}

func TestHorizontalLegendPositions(t *testing.T) {
	wri := writer.New(testFont, device.White, device.Black)
	l := NewLayout(Horizontal, 30, 10, 20, 107, 4)
	assert.Equal(t, []device.Position{
		{X: 10, Y: 16},
		{X: 60, Y: 16},
		{X: 107, Y: 16},
	}, l.LegendPositions([]string{"0", "5", "10"}, wri))
}

func TestVerticalLegendPositions(t *testing.T) {
	wri := writer.New(testFont, device.White, device.Black)
	l := NewLayout(Vertical, 10, 20, 100, 20, 10)
	assert.Equal(t, []device.Position{
		{X: 44, Y: 101},
		{X: 44, Y: 8},
	}, l.LegendPositions([]string{"lo", "hi"}, wri))
	assert.Equal(t, []device.Position{{X: 44, Y: 101}}, l.LegendPositions([]string{"only"}, wri))
}
