package types

import "image/color"

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorPanelBg    = color.RGBA{0, 0, 0, 255}
	ColorCyan       = color.RGBA{0, 255, 255, 255}
	ColorMagenta    = color.RGBA{255, 0, 255, 255}
	ColorTextDim    = color.RGBA{0, 150, 150, 255}
	ColorButton     = color.RGBA{255, 0, 255, 255}
	ColorButtonAlt  = color.RGBA{0, 255, 255, 255}
	ColorButtonText = color.RGBA{0, 0, 0, 255}
	ColorError      = color.RGBA{255, 80, 80, 255}
	ColorSuccess    = color.RGBA{100, 255, 100, 255}
	ColorOverlay    = color.RGBA{0, 0, 0, 204}
	ColorScanline   = color.RGBA{0, 255, 255, 12}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Swap returns the other neon accent, used for hover states.
func Swap(c color.RGBA) color.RGBA {
	if c == ColorMagenta {
		return ColorCyan
	}
	return ColorMagenta
}
