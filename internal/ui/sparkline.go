package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline draws the most recent width values of data, scaled between
// their min and max, in color. A flat series sits on the middle level.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		level := numLevels / 2
		if valueRange > 0 {
			level = int((v - minVal) / valueRange * float64(numLevels-1))
			level = max(0, min(level, numLevels-1))
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}
