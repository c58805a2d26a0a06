// Package geometry implements the percentage coordinate system over the
// A4 canvas. Every position or size written into a layout passes through
// the clamp functions here; callers never store raw values.
package geometry

import (
	"math"

	"github.com/smallbiznis/stencil/internal/designer/domain"
)

// A4 portrait dimensions in millimetres. The canvas is resolution
// independent: the same percentages render at 600px on screen or 210mm
// on paper.
const (
	A4WidthMM   = 210.0
	A4HeightMM  = 297.0
	A4Aspect    = A4WidthMM / A4HeightMM
	MinSizePct  = 5.0
	MaxSizePct  = 100.0
	MaxCoordPct = 100.0
)

// CanvasPixels is the on-screen pixel extent of the canvas at the
// moment of a drag. It carries no aspect guarantee of its own; the
// editor derives height from width via A4Aspect.
type CanvasPixels struct {
	Width  float64
	Height float64
}

// CanvasForWidth returns the pixel canvas for a given display width,
// with the height fixed by the A4 aspect ratio.
func CanvasForWidth(widthPx float64) CanvasPixels {
	return CanvasPixels{Width: widthPx, Height: widthPx / A4Aspect}
}

// ClampSize caps both extents to [5, 100] percent.
func ClampSize(size domain.Size) domain.Size {
	return domain.Size{
		Width:  clamp(size.Width, MinSizePct, MaxSizePct),
		Height: clamp(size.Height, MinSizePct, MaxSizePct),
	}
}

// ClampPosition caps a position so the component stays entirely on the
// canvas: x in [0, 100-width], y in [0, 100-height].
func ClampPosition(pos domain.Position, size domain.Size) domain.Position {
	return domain.Position{
		X: clamp(pos.X, 0, MaxCoordPct-size.Width),
		Y: clamp(pos.Y, 0, MaxCoordPct-size.Height),
	}
}

// DeltaFromPixels converts a pointer movement in pixels into canvas
// percentages against the live canvas extent.
func DeltaFromPixels(dxPx, dyPx float64, canvas CanvasPixels) (dx, dy float64) {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return 0, 0
	}
	return dxPx / canvas.Width * 100, dyPx / canvas.Height * 100
}

// Snap rounds a position to the nearest grid line. Snapping happens
// before clamping so a snapped value can never leave the canvas.
func Snap(pos domain.Position, gridPct float64) domain.Position {
	if gridPct <= 0 {
		return pos
	}
	return domain.Position{
		X: math.Round(pos.X/gridPct) * gridPct,
		Y: math.Round(pos.Y/gridPct) * gridPct,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
