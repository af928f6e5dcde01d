// pkg/render/text.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	regularFontSize = 24
	titleFontSize   = 48
)

// FontSet — шрифты игры. Разбираются один раз при старте и дальше
// передаются виджетам, которым нужен текст.
type FontSet struct {
	Regular font.Face
	Title   font.Face
}

// NewFontSet собирает набор из встроенного Go Regular, без файлов на диске.
func NewFontSet() (*FontSet, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse builtin font: %w", err)
	}
	regular, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    regularFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create regular face: %w", err)
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    titleFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create title face: %w", err)
	}
	return &FontSet{Regular: regular, Title: title}, nil
}

// DrawCenteredText выводит строку с горизонтальным центром в centerX.
// y задаёт базовую линию.
func DrawCenteredText(screen *ebiten.Image, face font.Face, str string, centerX, y int, clr color.Color) {
	bounds := text.BoundString(face, str)
	text.Draw(screen, str, face, centerX-bounds.Dx()/2, y, clr)
}
