// Package layout holds the widget's on-screen state: where it sits, whether
// it is being dragged, whether the settings panel is open, and which way the
// metrics flow. The three axes change independently.
//
// Coordinates are plain integers so the same state serves a terminal (cells)
// and a browser (pixels); only the PlacementPolicy differs.
package layout
