package guimath

import "math"

// GUIRounding is the grid that point-space layout values snap to.
//
// A power of two keeps the snapped values exact in float32, and 1/32 is
// finer than any realistic pixels-per-point ratio so snapping never moves
// a value by a visible amount.
const GUIRounding float32 = 1.0 / 32.0

// RoundUI snaps v to the nearest multiple of GUIRounding.
func RoundUI(v float32) float32 {
	return float32(math.Round(float64(v/GUIRounding))) * GUIRounding
}

// RoundToPixel rounds a point value to the closest physical pixel
// for the given pixels-per-point ratio.
func RoundToPixel(points, pixelsPerPoint float32) float32 {
	return float32(math.Round(float64(points*pixelsPerPoint))) / pixelsPerPoint
}

// Round rounds half away from zero, in float32.
func Round(v float32) float32 {
	return float32(math.Round(float64(v)))
}
