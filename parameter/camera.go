package parameter

// Field of view rectangles, expressed as fractions of the screen size
const (
	// FarRectScale sizes the vanishing rectangle
	FarRectScale = 0.05

	// NearRectScale sizes the closest visible plane, wider than the screen
	NearRectScale = 1.2

	// FOVLength is the visible along-track depth
	FOVLength = 800
)

// Near rectangle shift clamp, in pixels
const (
	NearShiftLimitLeft   = -110
	NearShiftLimitRight  = 110
	NearShiftLimitTop    = -60
	NearShiftLimitBottom = 70

	// NearShiftStartY lifts the view at flight start
	NearShiftStartY = -70
)

// BackgroundShiftStep is the far rectangle parallax per ship step
const BackgroundShiftStep = 0.05
