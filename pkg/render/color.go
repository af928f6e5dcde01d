// pkg/render/color.go
package render

import "image/color"

// Palette holds all the color definitions needed to render the game surface.
type Palette struct {
	Background color.RGBA
	TopBar     color.RGBA
	TextDark   color.RGBA
	TextLight  color.RGBA
}

// ScaleAlpha пропорционально гасит цвет: f в [0, 1], ноль даёт прозрачность.
// Используется для плавного проявления экрана итогов.
func ScaleAlpha(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
