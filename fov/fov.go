// Package fov models the viewport as two screen rectangles: a small far
// rectangle at the vanishing point and a large near rectangle for the closest
// visible plane. Depth-dependent items interpolate between their edges.
package fov

import (
	"github.com/lixenwraith/racer796/parameter"
	"github.com/lixenwraith/racer796/vmath"
)

// Rect is a viewport rectangle with its accumulated shift applied
type Rect struct {
	Left, Top, Right, Bottom float64
	Width, Height            float64
}

// CenterX returns the horizontal center of the rectangle
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// CenterY returns the vertical center of the rectangle
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// ShiftLimits bounds the cumulative near rectangle shift
type ShiftLimits struct {
	Left, Right, Top, Bottom float64
}

// DefaultShiftLimits returns the configured clamp for the near rectangle
func DefaultShiftLimits() ShiftLimits {
	return ShiftLimits{
		Left:   parameter.NearShiftLimitLeft,
		Right:  parameter.NearShiftLimitRight,
		Top:    parameter.NearShiftLimitTop,
		Bottom: parameter.NearShiftLimitBottom,
	}
}

// FieldOfView owns both rectangles and their shifts
// Far width/height never exceed near width/height since both derive from the screen size
// with FarRectScale < NearRectScale
type FieldOfView struct {
	far, near [4]float64 // left, top, right, bottom without shift

	limits               ShiftLimits
	shiftX, shiftY       float64
	farShiftX, farShiftY float64

	listeners []func()
}

// New creates a field of view for the given screen size
func New(screenWidth, screenHeight int, limits ShiftLimits) *FieldOfView {
	cx := float64(screenWidth >> 1)
	cy := float64(screenHeight >> 1)

	farHalfW := float64(int(float64(screenWidth)*parameter.FarRectScale) >> 1)
	farHalfH := float64(int(float64(screenHeight)*parameter.FarRectScale) >> 1)
	nearHalfW := float64(int(float64(screenWidth)*parameter.NearRectScale) >> 1)
	nearHalfH := float64(int(float64(screenHeight)*parameter.NearRectScale) >> 1)

	return &FieldOfView{
		far:    [4]float64{cx - farHalfW, cy - farHalfH, cx + farHalfW, cy + farHalfH},
		near:   [4]float64{cx - nearHalfW, cy - nearHalfH, cx + nearHalfW, cy + nearHalfH},
		limits: limits,
	}
}

// NewDefault creates a field of view for the standard screen raster
func NewDefault() *FieldOfView {
	return New(parameter.ScreenWidth, parameter.ScreenHeight, DefaultShiftLimits())
}

// OnChange registers a listener called after every shift
func (f *FieldOfView) OnChange(fn func()) {
	f.listeners = append(f.listeners, fn)
}

// Reset zeroes all shifts
func (f *FieldOfView) Reset() {
	f.shiftX, f.shiftY = 0, 0
	f.farShiftX, f.farShiftY = 0, 0
}

// MoveNearRect shifts the near rectangle, clamping the cumulative shift per axis
func (f *FieldOfView) MoveNearRect(dx, dy float64) {
	f.shiftX = vmath.Clamp(f.shiftX+dx, f.limits.Left, f.limits.Right)
	f.shiftY = vmath.Clamp(f.shiftY+dy, f.limits.Top, f.limits.Bottom)
	f.notify()
}

// MoveFarRect shifts the far rectangle without limits, used for background parallax
func (f *FieldOfView) MoveFarRect(dx, dy float64) {
	f.farShiftX += dx
	f.farShiftY += dy
	f.notify()
}

// NearShift returns the current cumulative near shift
func (f *FieldOfView) NearShift() (x, y float64) {
	return f.shiftX, f.shiftY
}

// FarRect returns the vanishing rectangle with its shift applied
func (f *FieldOfView) FarRect() Rect {
	return makeRect(f.far, f.farShiftX, f.farShiftY)
}

// NearRect returns the near rectangle with its shift applied
func (f *FieldOfView) NearRect() Rect {
	return makeRect(f.near, f.shiftX, f.shiftY)
}

func (f *FieldOfView) notify() {
	for _, fn := range f.listeners {
		fn()
	}
}

func makeRect(r [4]float64, dx, dy float64) Rect {
	return Rect{
		Left:   r[0] + dx,
		Top:    r[1] + dy,
		Right:  r[2] + dx,
		Bottom: r[3] + dy,
		Width:  r[2] - r[0],
		Height: r[3] - r[1],
	}
}
