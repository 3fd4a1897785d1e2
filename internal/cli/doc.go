// Package cli implements the widgetmon command-line interface.
//
// Each Cobra command parses flags and delegates to a small function in this
// package (runWidget, serveCommand, snapshotCommand, Init) which loads the
// config, applies flag overrides and hands off to the widget, server or
// config packages.
//
// # Command Structure
//
//	widgetmon               - Show the widget (same as run)
//	widgetmon run           - Show the widget in the terminal
//	widgetmon serve         - Serve the widget over HTTP and WebSocket
//	widgetmon snapshot      - Print one frame (or --json state)
//	widgetmon config init   - Write .widgetmon.yaml
//	widgetmon config show   - Print the resolved config
//	widgetmon version       - Print build information
//	widgetmon completion    - Generate shell completion
//
// # Configuration
//
// --config selects a file explicitly. Otherwise .widgetmon.yaml is searched
// from the working directory up to the repository root, then
// ~/.config/widgetmon/config.yaml. WIDGETMON_ environment variables override
// file values and --interval, --orientation and --disk override both.
//
// # Output
//
// snapshot --json wraps its output in JSONEnvelope so scripts can check
// success and read structured errors.
package cli
