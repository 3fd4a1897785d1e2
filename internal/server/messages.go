package server

import (
	stderrors "errors"

	"github.com/rileyhilliard/widgetmon/internal/errors"
)

// Frame types sent to WebSocket clients.
const (
	MessageHello = "hello"
	MessageState = "state"
	MessageError = "error"
)

// Command types accepted from WebSocket clients.
const (
	CommandToggle         = "toggle"
	CommandReorder        = "reorder"
	CommandSelectDisk     = "select_disk"
	CommandOrientation    = "orientation"
	CommandToggleSettings = "toggle_settings"
	CommandPointer        = "pointer"
)

// Message is a frame sent to a WebSocket client.
type Message struct {
	Type     string     `json:"type"`
	ClientID string     `json:"client_id,omitempty"`
	State    *State     `json:"state,omitempty"`
	Error    *ErrorBody `json:"error,omitempty"`
}

// Command is a frame received from a WebSocket client. Fields beyond Type
// are read according to Type.
type Command struct {
	Type        string `json:"type"`
	ID          string `json:"id,omitempty"`
	Dragged     string `json:"dragged,omitempty"`
	Target      string `json:"target,omitempty"`
	Orientation string `json:"orientation,omitempty"`
	PointerRequest
}

// ErrorBody is the JSON form of a structured error.
type ErrorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// errorBody converts err, falling back to a SERVER code for plain errors.
func errorBody(err error) *ErrorBody {
	var wmErr *errors.Error
	if stderrors.As(err, &wmErr) {
		return &ErrorBody{Code: wmErr.Code, Message: wmErr.Message, Suggestion: wmErr.Suggestion}
	}
	return &ErrorBody{Code: errors.ErrServer, Message: err.Error()}
}

// ReorderRequest is the body of POST /api/metrics/reorder.
type ReorderRequest struct {
	Dragged string `json:"dragged" binding:"required"`
	Target  string `json:"target" binding:"required"`
}

// DiskRequest is the body of POST /api/disk.
type DiskRequest struct {
	ID string `json:"id" binding:"required"`
}

// LayoutRequest is the body of POST /api/layout.
type LayoutRequest struct {
	Orientation string `json:"orientation" binding:"required,oneof=vertical horizontal"`
}

// PointerRequest is the body of POST /api/pointer. Width and height are the
// widget's rendered size.
type PointerRequest struct {
	Action    string `json:"action" binding:"required,oneof=down move up"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width" binding:"gte=0"`
	Height    int    `json:"height" binding:"gte=0"`
	OnControl bool   `json:"on_control"`
}

// PlacementQuery is the query of GET /api/placement.
type PlacementQuery struct {
	ViewportWidth  int `form:"viewport_width" binding:"required,gt=0"`
	ViewportHeight int `form:"viewport_height" binding:"required,gt=0"`
	WidgetWidth    int `form:"widget_width" binding:"required,gt=0"`
	WidgetHeight   int `form:"widget_height" binding:"required,gt=0"`
}
