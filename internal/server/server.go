package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/logger"
	"github.com/rileyhilliard/widgetmon/internal/telemetry"
)

// Defaults for Options.
const (
	DefaultAddr  = "127.0.0.1:8787"
	DefaultRate  = 20.0
	DefaultBurst = 40

	shutdownTimeout = 5 * time.Second
)

// Options configure a Server.
type Options struct {
	Addr   string
	Rate   float64
	Burst  int
	Logger logger.Logger
}

// Server exposes a Session over HTTP and WebSocket.
type Server struct {
	session *Session
	hub     *Hub
	limiter *RateLimiter
	engine  *gin.Engine
	addr    string
	log     logger.Logger

	// publishMu orders state capture and enqueueing across publishers.
	publishMu sync.Mutex
}

// New builds the router for session. It does not start listening.
func New(session *Session, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Rate <= 0 {
		opts.Rate = DefaultRate
	}
	if opts.Burst <= 0 {
		opts.Burst = DefaultBurst
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewEnvLogger("[server]")
	}

	s := &Server{
		session: session,
		limiter: NewRateLimiter(opts.Rate, opts.Burst),
		addr:    opts.Addr,
		log:     opts.Logger,
	}
	s.hub = NewHub(opts.Rate, opts.Burst, HubHandlers{
		OnConnect: s.greet,
		OnMessage: s.handleFrame,
		OnLimited: func(c *Client) {
			s.log.Warn("client %s rate limited", c.ID)
			s.reply(c, Message{Type: MessageError, Error: errorBody(errRateLimited())})
		},
	}, opts.Logger)
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)
	r.GET("/ws", s.hub.HandleWebSocket())

	api := r.Group("/api")
	api.GET("/state", s.getState)
	api.GET("/placement", s.getPlacement)

	mutate := api.Group("")
	mutate.Use(s.limiter.Middleware())
	mutate.POST("/metrics/:id/toggle", s.toggleMetric)
	mutate.POST("/metrics/reorder", s.reorderMetrics)
	mutate.POST("/disk", s.selectDisk)
	mutate.POST("/layout", s.setLayout)
	mutate.POST("/settings/toggle", s.toggleSettings)
	mutate.POST("/pointer", s.pointer)

	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Session returns the shared widget session.
func (s *Server) Session() *Session {
	return s.session
}

// Hub returns the WebSocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Publish broadcasts the current state to every WebSocket client.
func (s *Server) Publish() {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	st := s.session.State()
	payload, err := json.Marshal(Message{Type: MessageState, State: &st})
	if err != nil {
		s.log.Error("encode state: %v", err)
		return
	}
	s.hub.Broadcast(payload)
}

// Attach subscribes the session to src so every snapshot is applied and
// published. The returned function unsubscribes.
func (s *Server) Attach(src telemetry.Sources) func() {
	unsubHW := src.Hardware.Subscribe(func(hw telemetry.HardwareSnapshot) {
		s.session.ApplyHardware(hw)
		s.Publish()
	})
	unsubNet := src.Network.Subscribe(func(net telemetry.NetworkSnapshot) {
		s.session.ApplyNetwork(net)
		s.Publish()
	})
	return func() {
		unsubHW()
		unsubNet()
	}
}

// Run serves on the configured address, feeding the session from src, until
// ctx is done. Shutdown stops the generators first, then drains HTTP requests
// and finally closes WebSocket clients.
func (s *Server) Run(ctx context.Context, src telemetry.Sources) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	detach := s.Attach(src)
	defer detach()

	// The hub outlives ctx until HTTP shutdown has finished.
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		s.hub.Run(hubCtx)
	}()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on http://%s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	src.Start(ctx)

	var runErr error
	select {
	case err := <-errCh:
		if !stderrors.Is(err, http.ErrServerClosed) {
			runErr = errors.WrapWithCode(err, errors.ErrServer,
				"Server failed on "+s.addr,
				"Check that the address is free or pass a different --addr")
		}
	case <-ctx.Done():
	}

	src.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = errors.WrapWithCode(err, errors.ErrServer, "Server did not shut down cleanly", "")
	}

	// WebSocket connections are hijacked, so Shutdown does not wait for them.
	// Closing the hub last sends them a close frame.
	cancel()
	stopHub()
	<-hubDone
	s.log.Info("stopped")
	return runErr
}
