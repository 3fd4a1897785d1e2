// Package ui provides the small styled pieces the widget and CLI share.
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - healthy readings, completed checks
//	ColorWarning   (yellow) - readings at or above WarningThreshold
//	ColorError     (red)    - readings at or above CriticalThreshold
//	ColorInfo      (cyan)   - network rates and sparklines
//	ColorMuted     (gray)   - labels, hints, hidden metrics
//	ColorSecondary (blue)   - in-progress indicators
//
// # Components
//
//	RenderSparkline - one-row block sparkline from a history window
//	StatusSpinner   - Bubble Tea spinner that settles into a final message
package ui
