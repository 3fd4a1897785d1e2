package layout

// State is the widget's layout. The zero value is an idle, horizontal widget
// at the origin with settings closed.
type State struct {
	Position     Point
	Orientation  Orientation
	SettingsOpen bool

	dragging bool
	offset   Point
}

// NewState returns a state at pos with the given orientation.
func NewState(pos Point, o Orientation) State {
	return State{Position: pos, Orientation: o}
}

// Dragging reports whether a pointer drag is in progress.
func (s *State) Dragging() bool {
	return s.dragging
}

// Offset returns the pointer offset captured when the current drag began.
func (s *State) Offset() Point {
	return s.offset
}

// PointerDown starts a drag when p lands inside the widget and not on one of
// its controls. The offset from the widget's top-left corner is kept so the
// widget does not jump under the pointer. Returns whether a drag started.
func (s *State) PointerDown(p Point, widget Size, onControl bool) bool {
	if onControl {
		return false
	}
	if !(Rect{Point: s.Position, Size: widget}).Contains(p) {
		return false
	}
	s.dragging = true
	s.offset = p.Sub(s.Position)
	return true
}

// PointerMove repositions the widget while dragging. Positions are not
// clamped, so the widget may leave the viewport. Returns whether the
// position changed.
func (s *State) PointerMove(p Point) bool {
	if !s.dragging {
		return false
	}
	next := p.Sub(s.offset)
	if next == s.Position {
		return false
	}
	s.Position = next
	return true
}

// PointerUp ends a drag. It is accepted anywhere. Returns whether a drag was
// in progress.
func (s *State) PointerUp() bool {
	if !s.dragging {
		return false
	}
	s.dragging = false
	s.offset = Point{}
	return true
}

// ToggleSettings opens or closes the settings panel and returns the new state.
func (s *State) ToggleSettings() bool {
	s.SettingsOpen = !s.SettingsOpen
	return s.SettingsOpen
}

// ToggleOrientation flips between vertical and horizontal.
func (s *State) ToggleOrientation() Orientation {
	s.Orientation = s.Orientation.Toggle()
	return s.Orientation
}

// MoveBy nudges the widget, used for keyboard movement.
func (s *State) MoveBy(dx, dy int) {
	s.Position = s.Position.Add(Point{X: dx, Y: dy})
}

// Bounds returns the widget's rectangle for the given rendered size.
func (s *State) Bounds(widget Size) Rect {
	return Rect{Point: s.Position, Size: widget}
}
