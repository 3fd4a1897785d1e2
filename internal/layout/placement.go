package layout

// Side is where the settings panel sits relative to the widget.
type Side int

const (
	Right Side = iota
	Left
	Below
	Above
)

func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Left:
		return "left"
	case Below:
		return "below"
	case Above:
		return "above"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PlacementPolicy holds the margins used to decide whether the panel fits
// after the widget. VerticalMargin pads the panel width for a vertical widget,
// HorizontalMargin pads the panel height for a horizontal one. Gap separates
// panel and widget.
type PlacementPolicy struct {
	VerticalMargin   int
	HorizontalMargin int
	Gap              int
}

// PixelPolicy is used by browser renderers.
var PixelPolicy = PlacementPolicy{VerticalMargin: 16, HorizontalMargin: 48, Gap: 8}

// CellPolicy is used by the terminal renderer, where one unit is a cell.
var CellPolicy = PlacementPolicy{VerticalMargin: 2, HorizontalMargin: 2, Gap: 1}

// PixelPanelSize returns the settings panel size a browser renderer uses.
func PixelPanelSize(o Orientation) Size {
	if o == Vertical {
		return Size{W: 224, H: 330}
	}
	return Size{W: 520, H: 240}
}

// Placement is the computed panel position.
type Placement struct {
	Side   Side  `json:"side"`
	Origin Point `json:"origin"`
}

// Place picks the panel side for a widget in orientation o. A vertical widget
// gets the panel to its right when the space there exceeds the panel width
// plus margin, otherwise to its left. A horizontal widget gets the panel below
// on the same terms, otherwise above. Both are aligned to the widget's top-left
// edge on the other axis.
func Place(o Orientation, viewport Size, widget Rect, panel Size, policy PlacementPolicy) Placement {
	if o == Vertical {
		spaceRight := viewport.W - widget.Right()
		if spaceRight > panel.W+policy.VerticalMargin {
			return Placement{Side: Right, Origin: Point{X: widget.Right() + policy.Gap, Y: widget.Y}}
		}
		return Placement{Side: Left, Origin: Point{X: widget.X - policy.Gap - panel.W, Y: widget.Y}}
	}

	spaceBelow := viewport.H - widget.Bottom()
	if spaceBelow > panel.H+policy.HorizontalMargin {
		return Placement{Side: Below, Origin: Point{X: widget.X, Y: widget.Bottom() + policy.Gap}}
	}
	return Placement{Side: Above, Origin: Point{X: widget.X, Y: widget.Y - policy.Gap - panel.H}}
}

// Placement computes where the settings panel goes for the current state.
func (s *State) Placement(viewport, widget, panel Size, policy PlacementPolicy) Placement {
	return Place(s.Orientation, viewport, s.Bounds(widget), panel, policy)
}
