package parameter

// HSL lightness per launch source, saturation is always full
const (
	BackgroundLightness = 0.65
	PointerLightness    = 0.80
)

// Trail clear
const (
	// TrailAlpha is the opacity of the per-frame background fill
	TrailAlpha = 0.2

	BackgroundR = 0
	BackgroundG = 5
	BackgroundB = 16
)

// Terminal mapping
const (
	// WorldUnitsPerDot maps world units onto half-block dots
	WorldUnitsPerDot = 4.0
)

// Window frontend
const (
	WindowWidth  = 1280
	WindowHeight = 720
)
