// Package widget implements the terminal telemetry widget as a Bubble Tea
// program.
//
// # Architecture
//
// The widget follows the Elm architecture:
//
//	Model  - registry, layout state, sparkline history, update check status
//	Update - applies snapshots, key presses and mouse events
//	View   - paints the widget and settings panel onto a terminal-sized canvas
//
// Snapshots arrive from the telemetry generators through Program.Send as
// HardwareMsg and NetworkMsg. All registry and layout mutation happens in
// Update, so the registry needs no locking here.
//
// # Layout
//
// The widget box is positioned at the layout state's position and may be
// dragged partly or fully off screen; the canvas crops it. Vertical widgets
// list one metric per row with a sparkline. Horizontal widgets use a five
// column grid where network rates drop their label. The clock metric always
// renders in the header slot above the list.
//
// The settings panel opens next to the widget on whichever side has room,
// computed with layout.Place in cell units.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C     Quit
//	s             Open/close settings
//	l             Switch vertical/horizontal
//	d             Track next disk
//	u             Check for updates
//	arrows        Move the widget (settings closed) or the cursor (open)
//	space         Show/hide the metric under the cursor
//	K / J         Move the metric under the cursor up/down
//	?             Toggle help
package widget
