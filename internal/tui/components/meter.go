// Package components renders the individual panels of the dashboard.
package components

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

const defaultMeterWidth = 30

// Meter renders a 0-100 value as a bar filled with the band's gradient.
func Meter(value float64, band viewmodel.Band, width int) string {
	if width <= 0 {
		width = defaultMeterWidth
	}
	from, to := band.Gradient()
	bar := progress.New(
		progress.WithGradient(from, to),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	return bar.ViewAs(fraction(value))
}

// SolidMeter renders a 0-100 value with a single fill colour.
func SolidMeter(value float64, color string, width int) string {
	if width <= 0 {
		width = defaultMeterWidth
	}
	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	return bar.ViewAs(fraction(value))
}

func fraction(value float64) float64 {
	switch {
	case value < 0:
		return 0
	case value > 100:
		return 1
	default:
		return value / 100
	}
}

func meterWidth(width int) int {
	w := width - 20
	if w < 10 {
		return 10
	}
	if w > 40 {
		return 40
	}
	return w
}
