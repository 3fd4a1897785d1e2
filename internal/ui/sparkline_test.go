package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRenderSparkline_Empty(t *testing.T) {
	assert.Empty(t, RenderSparkline(nil, 10, ""))
	assert.Empty(t, RenderSparkline([]float64{1, 2}, 0, ""))
	assert.Empty(t, RenderSparkline([]float64{1, 2}, -3, ColorInfo))
}

func TestRenderSparkline_PercentScale(t *testing.T) {
	got := RenderSparkline([]float64{0, 50, 100}, 3, "")
	assert.Equal(t, "▁▄█", got)
}

func TestRenderSparkline_RawScale(t *testing.T) {
	got := RenderSparkline([]float64{1000, 2000, 3000}, 3, "")
	assert.Equal(t, "▁▄█", got, "non-percentage data scales to its own range")
}

func TestRenderSparkline_Width(t *testing.T) {
	tests := []struct {
		name  string
		data  []float64
		width int
	}{
		{"upsample", []float64{10, 90}, 8},
		{"downsample", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 4},
		{"single value", []float64{42}, 5},
		{"single cell", []float64{10, 20, 30}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderSparkline(tt.data, tt.width, ColorInfo)
			assert.Equal(t, tt.width, utf8.RuneCountInString(got))
		})
	}
}

func TestResampleData_DownsampleKeepsPeaks(t *testing.T) {
	got := resampleData([]float64{1, 9, 1, 1, 1, 1}, 3)
	assert.Equal(t, []float64{9, 1, 1}, got)
}

func TestResampleData_SingleCellKeepsMax(t *testing.T) {
	assert.Equal(t, []float64{30}, resampleData([]float64{10, 30}, 1))
}
