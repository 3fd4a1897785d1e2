// Package server exposes the widget over HTTP and WebSocket so a browser or
// desktop shell can render it.
//
// A single Session holds the metric registry and layout state. REST routes
// under /api read and mutate it; /ws streams the full state to every
// connected client after each snapshot or change and accepts the same
// mutations as JSON command frames.
//
// Routes:
//
//	GET  /healthz
//	GET  /api/state
//	GET  /api/placement?viewport_width=&viewport_height=&widget_width=&widget_height=
//	POST /api/metrics/:id/toggle
//	POST /api/metrics/reorder   {"dragged": "gpu", "target": "cpu"}
//	POST /api/disk              {"id": "nvme"}
//	POST /api/layout            {"orientation": "vertical"}
//	POST /api/settings/toggle
//	POST /api/pointer           {"action": "down", "x": 10, "y": 4, "width": 320, "height": 120}
//	GET  /ws
package server
