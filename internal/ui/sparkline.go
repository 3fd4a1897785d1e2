package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparklineBlocks are block characters for 8-level vertical resolution (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline renders a single-row sparkline of exactly width cells
// (when data is non-empty) using block characters. Percentage data (all values
// within 0-100) is scaled to a fixed 0-100 range; anything else is scaled to
// its own min and max. An empty color leaves the output unstyled.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	minVal, maxVal := findMinMax(data)
	resampled := resampleData(data, width)

	var sb strings.Builder
	sb.Grow(width * 3)
	for _, val := range resampled {
		normalized := normalizeValue(val, minVal, maxVal)
		idx := clampInt(int(normalized*float64(len(sparklineBlocks)-1)), len(sparklineBlocks)-1)
		sb.WriteRune(sparklineBlocks[idx])
	}

	if color == "" {
		return sb.String()
	}
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// findMinMax returns the scaling range for data.
// For percentage data (all values 0-100), returns fixed range 0-100.
func findMinMax(data []float64) (minVal, maxVal float64) {
	minVal, maxVal = data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	if maxVal <= 100 && minVal >= 0 {
		return 0, 100
	}
	return minVal, maxVal
}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// resampleData resamples data to the target size.
// When downsampling, uses the max within each bucket to preserve spikes.
// When upsampling, uses linear interpolation.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}

	if len(data) == targetSize {
		return data
	}

	result := make([]float64, targetSize)

	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	if len(data) > targetSize {
		bucketSize := float64(len(data)) / float64(targetSize)
		for i := 0; i < targetSize; i++ {
			start := int(float64(i) * bucketSize)
			end := int(float64(i+1) * bucketSize)
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				start = end - 1
			}

			maxVal := data[start]
			for j := start + 1; j < end; j++ {
				if data[j] > maxVal {
					maxVal = data[j]
				}
			}
			result[i] = maxVal
		}
		return result
	}

	scale := float64(len(data)-1) / float64(targetSize-1)
	for i := 0; i < targetSize; i++ {
		pos := float64(i) * scale
		idx := int(pos)
		frac := pos - float64(idx)

		if idx >= len(data)-1 {
			result[i] = data[len(data)-1]
		} else {
			result[i] = data[idx]*(1-frac) + data[idx+1]*frac
		}
	}

	return result
}
