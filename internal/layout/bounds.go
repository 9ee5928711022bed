package layout

import "math"

// ViewPortBounds is the input contract handed to a layout engine by its
// container.
type ViewPortBounds struct {
	// X and Y are the origin items are positioned from.
	X, Y float64

	// ScrollX and ScrollY are the container's current scroll offsets.
	ScrollX, ScrollY float64

	// ExplicitWidth and ExplicitHeight are the viewport size. When unset the
	// engine measures the content and clamps it to the min/max bounds.
	ExplicitWidth  Dim
	ExplicitHeight Dim

	MinWidth  float64
	MinHeight float64
	MaxWidth  Dim // unset = unbounded
	MaxHeight Dim // unset = unbounded
}

// BoundsResult is the output contract of a layout engine.
type BoundsResult struct {
	ContentX      float64
	ContentY      float64
	ContentWidth  float64
	ContentHeight float64

	ViewPortWidth  float64
	ViewPortHeight float64
}

// axisBounds is ViewPortBounds projected onto the layout axis.
type axisBounds struct {
	origin, crossOrigin float64
	scroll              float64
	explicit            Dim
	explicitCross       Dim
	min, minCross       float64
	max, maxCross       float64

	padStart, padEnd           float64
	padCrossStart, padCrossEnd float64
}

func (a axisBounds) padMain() float64  { return a.padStart + a.padEnd }
func (a axisBounds) padCross() float64 { return a.padCrossStart + a.padCrossEnd }

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// roundHalfUp rounds to the nearest integer, halves toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
