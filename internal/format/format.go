// Package format turns raw telemetry numbers into the short strings shown in
// the widget.
package format

import (
	"fmt"
	"math"
)

const unit = 1024.0

// FormatSpeed formats a bytes-per-second rate as a human-readable string with
// one decimal place. Each tier compares the already-divided quotient against
// 1024, so 1023.95 KB/s renders as "1024.0 KB/s" rather than rolling over.
//
// Negative and NaN rates are not meaningful throughput and render as "0.0 B/s".
func FormatSpeed(bytesPerSecond float64) string {
	if bytesPerSecond < 0 || math.IsNaN(bytesPerSecond) {
		bytesPerSecond = 0
	}

	if bytesPerSecond < unit {
		return fmt.Sprintf("%.1f B/s", bytesPerSecond)
	}

	kb := bytesPerSecond / unit
	if kb < unit {
		return fmt.Sprintf("%.1f KB/s", kb)
	}

	mb := kb / unit
	if mb < unit {
		return fmt.Sprintf("%.1f MB/s", mb)
	}

	return fmt.Sprintf("%.1f GB/s", mb/unit)
}

// FormatPercent renders a 0-100 value with no decimals, e.g. "42%".
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.0f%%", percent)
}

// FormatTemp renders a Celsius temperature with no decimals, e.g. "61°C".
func FormatTemp(celsius float64) string {
	return fmt.Sprintf("%.0f°C", celsius)
}

// FormatClock renders a clock speed in GHz with two decimals, e.g. "4.25 GHz".
func FormatClock(ghz float64) string {
	return fmt.Sprintf("%.2f GHz", ghz)
}
