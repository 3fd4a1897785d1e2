package layout

import (
	"fmt"
	"strings"
)

// Orientation is the direction the metric list flows.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	default:
		return "horizontal"
	}
}

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseOrientation accepts "vertical" or "horizontal" in any case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q (want vertical or horizontal)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	parsed, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
