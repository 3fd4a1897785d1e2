package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/layout"
)

func abortWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"error": errorBody(err)})
}

// statusFor maps a session error to an HTTP status.
func statusFor(err error) int {
	if errors.IsCode(err, errors.ErrRegistry) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func badRequest(err error) *errors.Error {
	return errors.WrapWithCode(err, errors.ErrServer, "Invalid request", "Check the request body against the API")
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "clients": s.hub.ClientCount()})
}

func (s *Server) getState(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.State())
}

func (s *Server) getPlacement(c *gin.Context) {
	var q PlacementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, badRequest(err))
		return
	}
	p := s.session.Placement(
		layout.Size{W: q.ViewportWidth, H: q.ViewportHeight},
		layout.Size{W: q.WidgetWidth, H: q.WidgetHeight},
	)
	c.JSON(http.StatusOK, p)
}

// respond answers a mutation: the error on failure, otherwise the new state,
// which is also pushed to WebSocket clients.
func (s *Server) respond(c *gin.Context, err error) {
	if err != nil {
		s.log.Debug("%s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
		abortWithError(c, statusFor(err), err)
		return
	}
	s.Publish()
	c.JSON(http.StatusOK, s.session.State())
}

func (s *Server) toggleMetric(c *gin.Context) {
	s.respond(c, s.session.Toggle(c.Param("id")))
}

func (s *Server) reorderMetrics(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, badRequest(err))
		return
	}
	s.respond(c, s.session.Reorder(req.Dragged, req.Target))
}

func (s *Server) selectDisk(c *gin.Context) {
	var req DiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, badRequest(err))
		return
	}
	s.respond(c, s.session.SelectDisk(req.ID))
}

func (s *Server) setLayout(c *gin.Context) {
	var req LayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, badRequest(err))
		return
	}
	s.respond(c, s.setOrientation(req.Orientation))
}

func (s *Server) setOrientation(value string) error {
	o, err := layout.ParseOrientation(value)
	if err != nil {
		return badRequest(err)
	}
	s.session.SetOrientation(o)
	return nil
}

func (s *Server) toggleSettings(c *gin.Context) {
	s.session.ToggleSettings()
	s.respond(c, nil)
}

func (s *Server) pointer(c *gin.Context) {
	var req PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, badRequest(err))
		return
	}
	s.respond(c, s.applyPointer(req))
}

func (s *Server) applyPointer(req PointerRequest) error {
	_, err := s.session.Pointer(req.Action,
		layout.Point{X: req.X, Y: req.Y},
		layout.Size{W: req.Width, H: req.Height},
		req.OnControl)
	return err
}

// greet sends a new client its id and the current state.
func (s *Server) greet(c *Client) {
	st := s.session.State()
	s.reply(c, Message{Type: MessageHello, ClientID: c.ID, State: &st})
}

func (s *Server) reply(c *Client, msg Message) {
	if err := c.Send(msg); err != nil {
		s.log.Warn("reply to %s failed: %v", c.ID, err)
	}
}

// handleFrame applies one command frame. Successful commands are answered by
// the state broadcast; failures only go back to the sender.
func (s *Server) handleFrame(c *Client, data []byte) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		s.reply(c, Message{Type: MessageError, Error: errorBody(badRequest(err))})
		return
	}

	if err := s.apply(cmd); err != nil {
		s.log.Debug("client %s %s rejected: %v", c.ID, cmd.Type, err)
		s.reply(c, Message{Type: MessageError, Error: errorBody(err)})
		return
	}
	s.Publish()
}

func (s *Server) apply(cmd Command) error {
	switch cmd.Type {
	case CommandToggle:
		return s.session.Toggle(cmd.ID)
	case CommandReorder:
		return s.session.Reorder(cmd.Dragged, cmd.Target)
	case CommandSelectDisk:
		return s.session.SelectDisk(cmd.ID)
	case CommandOrientation:
		return s.setOrientation(cmd.Orientation)
	case CommandToggleSettings:
		s.session.ToggleSettings()
		return nil
	case CommandPointer:
		return s.applyPointer(cmd.PointerRequest)
	default:
		return errors.New(errors.ErrServer, "Unknown command '"+cmd.Type+"'",
			"Use one of: toggle, reorder, select_disk, orientation, toggle_settings, pointer")
	}
}
