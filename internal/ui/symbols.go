package ui

// Unicode symbols used across the widget.
const (
	SymbolSuccess   = "✓"
	SymbolFail      = "✗"
	SymbolChecked   = "■"
	SymbolUnchecked = "□"
	SymbolCursor    = "›"
	SymbolGear      = "⚙"
	SymbolGrip      = "⠿" // drag handle on settings rows
	SymbolDot       = "•"
)
