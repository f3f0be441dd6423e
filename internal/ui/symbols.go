package ui

// Unicode symbols for loader status lines.
const (
	SymbolSpinning = "◐" // Loader spinning
	SymbolPaused   = "‖" // Loader frozen mid-sweep
	SymbolStopped  = "○" // Loader reset
	SymbolComplete = "●" // Inline spinner finished
	SymbolHead     = "●" // Ring head dot
	SymbolArc      = "•" // Ring body cell
)

// stateSymbols maps a state name to its status symbol.
var stateSymbols = map[string]string{
	"spinning": SymbolSpinning,
	"paused":   SymbolPaused,
	"stopped":  SymbolStopped,
}

// StateSymbol returns the status symbol for a state name.
func StateSymbol(name string) string {
	if sym, ok := stateSymbols[name]; ok {
		return sym
	}
	return SymbolStopped
}
