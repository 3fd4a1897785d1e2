package cli

import (
	"context"

	"github.com/rileyhilliard/widgetmon/internal/config"
	"github.com/rileyhilliard/widgetmon/internal/logger"
	"github.com/rileyhilliard/widgetmon/internal/server"
)

// serveCommand runs the HTTP/WebSocket server until ctx is cancelled.
func serveCommand(ctx context.Context, addr string) error {
	cfg, err := loadConfig(func(c *config.Config) {
		if addr != "" {
			c.Server.Addr = addr
		}
	})
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	session := server.NewSession(buildRegistry(cfg), cfg.LayoutState())
	srv := server.New(session, server.Options{
		Addr:   cfg.Server.Addr,
		Rate:   cfg.Server.Rate,
		Burst:  cfg.Server.Burst,
		Logger: logger.NewEnvLogger("[server]"),
	})
	return srv.Run(ctx, newSources(cfg))
}
