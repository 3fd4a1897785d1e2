package server

import (
	"fmt"
	"sync"

	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/layout"
	"github.com/rileyhilliard/widgetmon/internal/metrics"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
)

// Pointer actions accepted by Session.Pointer.
const (
	PointerDown = "down"
	PointerMove = "move"
	PointerUp   = "up"
)

// LayoutState is the JSON form of the widget layout.
type LayoutState struct {
	Position     layout.Point       `json:"position"`
	Orientation  layout.Orientation `json:"orientation"`
	SettingsOpen bool               `json:"settings_open"`
	Dragging     bool               `json:"dragging"`
}

// State is everything a remote renderer needs to draw the widget.
type State struct {
	View     metrics.View               `json:"view"`
	Layout   LayoutState                `json:"layout"`
	Hardware telemetry.HardwareSnapshot `json:"hardware"`
	Network  telemetry.NetworkSnapshot  `json:"network"`
}

// Session is the widget state shared by every HTTP and WebSocket client.
// All access goes through its mutex.
type Session struct {
	mu       sync.Mutex
	registry *metrics.Registry
	layout   layout.State
}

// NewSession wraps registry and an initial layout.
func NewSession(registry *metrics.Registry, state layout.State) *Session {
	return &Session{registry: registry, layout: state}
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	return State{
		View: s.registry.View(),
		Layout: LayoutState{
			Position:     s.layout.Position,
			Orientation:  s.layout.Orientation,
			SettingsOpen: s.layout.SettingsOpen,
			Dragging:     s.layout.Dragging(),
		},
		Hardware: s.registry.Hardware(),
		Network:  s.registry.Network(),
	}
}

// ApplyHardware records a hardware snapshot.
func (s *Session) ApplyHardware(hw telemetry.HardwareSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.UpdateHardware(hw)
}

// ApplyNetwork records a network snapshot.
func (s *Session) ApplyNetwork(net telemetry.NetworkSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.UpdateNetwork(net)
}

// Toggle flips the visibility of metric id.
func (s *Session) Toggle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.registry.Toggle(id) {
		return errors.NewUnknownMetric(id)
	}
	return nil
}

// Reorder moves dragged to target's position. Dropping a metric on itself
// is accepted and changes nothing.
func (s *Session) Reorder(dragged, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range []string{dragged, target} {
		if s.registry.Index(id) < 0 {
			return errors.NewUnknownMetric(id)
		}
	}
	s.registry.Reorder(dragged, target)
	return nil
}

// SelectDisk tracks the disk with id, which must be in the catalog.
func (s *Session) SelectDisk(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.registry.KnownDisks() {
		if d.ID == id {
			s.registry.SelectDisk(id)
			return nil
		}
	}
	return errors.New(errors.ErrRegistry,
		fmt.Sprintf("Unknown disk '%s'", id),
		"Pick one of the disks listed in the state's view.disks")
}

// SetOrientation switches the widget orientation.
func (s *Session) SetOrientation(o layout.Orientation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout.Orientation = o
}

// ToggleSettings opens or closes the settings panel and returns the new state.
func (s *Session) ToggleSettings() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.ToggleSettings()
}

// Pointer feeds a pointer event to the layout. widget is the size the client
// rendered the widget at; it only matters for PointerDown. Returns whether
// anything changed.
func (s *Session) Pointer(action string, p layout.Point, widget layout.Size, onControl bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case PointerDown:
		if onControl && (layout.Rect{Point: s.layout.Position, Size: widget}).Contains(p) {
			s.layout.ToggleSettings()
			return true, nil
		}
		return s.layout.PointerDown(p, widget, onControl), nil
	case PointerMove:
		return s.layout.PointerMove(p), nil
	case PointerUp:
		return s.layout.PointerUp(), nil
	default:
		return false, errors.New(errors.ErrServer,
			fmt.Sprintf("Unknown pointer action '%s'", action),
			"Use one of: down, move, up")
	}
}

// Placement computes where a browser renderer should draw the settings panel
// for a widget of the given size inside viewport.
func (s *Session) Placement(viewport, widget layout.Size) layout.Placement {
	s.mu.Lock()
	defer s.mu.Unlock()
	panel := layout.PixelPanelSize(s.layout.Orientation)
	return s.layout.Placement(viewport, widget, panel, layout.PixelPolicy)
}
