package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/widgetmon/internal/server"
	"github.com/rileyhilliard/widgetmon/internal/widget"
)

// snapshotCommand renders one tick of both generators to w.
func snapshotCommand(w io.Writer, opts RunOptions, asJSON bool) error {
	cfg, err := loadConfig(opts.Apply)
	if err != nil {
		if asJSON {
			_ = WriteJSONError(w, err)
		}
		return err
	}

	src := newSources(cfg)
	hw := src.Hardware.Next()
	net := src.Network.Next()

	if asJSON {
		session := server.NewSession(buildRegistry(cfg), cfg.LayoutState())
		session.ApplyHardware(hw)
		session.ApplyNetwork(net)
		return WriteJSONSuccess(w, session.State())
	}

	var m widget.Model = newWidget(cfg, buildRegistry(cfg))
	next, _ := m.Update(widget.HardwareMsg(hw))
	next, _ = next.Update(widget.NetworkMsg(net))
	_, err = fmt.Fprintln(w, next.(widget.Model).Frame())
	return err
}
