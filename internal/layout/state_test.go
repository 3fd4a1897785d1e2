package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var widgetSize = Size{W: 30, H: 10}

func TestState_ZeroValue(t *testing.T) {
	var s State
	assert.False(t, s.Dragging())
	assert.False(t, s.SettingsOpen)
	assert.Equal(t, Horizontal, s.Orientation)
	assert.Equal(t, Point{}, s.Position)
}

func TestState_DragLifecycle(t *testing.T) {
	s := NewState(Point{X: 100, Y: 50}, Vertical)

	require.True(t, s.PointerDown(Point{X: 105, Y: 52}, widgetSize, false))
	assert.True(t, s.Dragging())
	assert.Equal(t, Point{X: 5, Y: 2}, s.Offset())

	assert.True(t, s.PointerMove(Point{X: 205, Y: 12}))
	assert.Equal(t, Point{X: 200, Y: 10}, s.Position, "position is pointer minus offset")

	assert.True(t, s.PointerUp())
	assert.False(t, s.Dragging())

	assert.False(t, s.PointerMove(Point{X: 0, Y: 0}), "moves after release are ignored")
	assert.Equal(t, Point{X: 200, Y: 10}, s.Position)
}

func TestState_PointerDownRejected(t *testing.T) {
	tests := []struct {
		name      string
		p         Point
		onControl bool
	}{
		{name: "on a control", p: Point{X: 101, Y: 51}, onControl: true},
		{name: "left of widget", p: Point{X: 99, Y: 51}},
		{name: "past right edge", p: Point{X: 130, Y: 51}},
		{name: "past bottom edge", p: Point{X: 101, Y: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(Point{X: 100, Y: 50}, Horizontal)
			assert.False(t, s.PointerDown(tt.p, widgetSize, tt.onControl))
			assert.False(t, s.Dragging())
		})
	}
}

func TestState_DragOffScreenIsNotClamped(t *testing.T) {
	s := NewState(Point{X: 2, Y: 2}, Horizontal)
	require.True(t, s.PointerDown(Point{X: 4, Y: 3}, widgetSize, false))

	s.PointerMove(Point{X: -20, Y: -5})

	assert.Equal(t, Point{X: -22, Y: -6}, s.Position)
}

func TestState_PointerMoveSamePosition(t *testing.T) {
	s := NewState(Point{X: 10, Y: 10}, Horizontal)
	require.True(t, s.PointerDown(Point{X: 12, Y: 11}, widgetSize, false))

	assert.False(t, s.PointerMove(Point{X: 12, Y: 11}))
}

func TestState_PointerUpWithoutDrag(t *testing.T) {
	var s State
	assert.False(t, s.PointerUp())
}

func TestState_AxesAreIndependent(t *testing.T) {
	s := NewState(Point{X: 10, Y: 10}, Horizontal)
	require.True(t, s.PointerDown(Point{X: 11, Y: 11}, widgetSize, false))

	assert.True(t, s.ToggleSettings())
	assert.Equal(t, Vertical, s.ToggleOrientation())

	assert.True(t, s.Dragging())
	assert.True(t, s.SettingsOpen)

	s.PointerUp()
	assert.True(t, s.SettingsOpen)
	assert.Equal(t, Vertical, s.Orientation)

	assert.False(t, s.ToggleSettings())
	assert.Equal(t, Horizontal, s.ToggleOrientation())
}

func TestState_MoveBy(t *testing.T) {
	s := NewState(Point{X: 3, Y: 4}, Horizontal)
	s.MoveBy(-5, 2)
	assert.Equal(t, Point{X: -2, Y: 6}, s.Position)
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{in: "vertical", want: Vertical},
		{in: "Horizontal", want: Horizontal},
		{in: " v ", want: Vertical},
		{in: "h", want: Horizontal},
		{in: "diagonal", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrientation(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrientation_Text(t *testing.T) {
	b, err := Vertical.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "vertical", string(b))

	var o Orientation
	require.NoError(t, o.UnmarshalText([]byte("vertical")))
	assert.Equal(t, Vertical, o)
	assert.Error(t, o.UnmarshalText([]byte("sideways")))
	assert.Equal(t, Vertical, o, "failed unmarshal leaves value untouched")
}
