// internal/ui/summary.go
package ui

import (
	"fmt"

	"go-aim-trainer/internal/app"
	"go-aim-trainer/internal/utils"
	"go-aim-trainer/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

const (
	summaryFirstLineY = 100
	summaryLineStep   = 100
	summarySlidePx    = 24.0
	summaryFadeTime   = 0.5 // seconds
)

// SummaryPanel — экран итогов: время, темп, попадания и точность,
// строки проявляются и подъезжают к своим местам.
type SummaryPanel struct {
	width    int
	fontFace font.Face
	palette  render.Palette
	fade     float64
}

func NewSummaryPanel(width int, fontFace font.Face, palette render.Palette) *SummaryPanel {
	return &SummaryPanel{
		width:    width,
		fontFace: fontFace,
		palette:  palette,
	}
}

// Update двигает анимацию проявления.
func (p *SummaryPanel) Update(deltaTime float64) {
	p.fade = utils.Clamp01(p.fade + deltaTime/summaryFadeTime)
}

func (p *SummaryPanel) Draw(screen *ebiten.Image, session *app.Session) {
	lines := []string{
		fmt.Sprintf("Time: %s", utils.FormatDuration(session.Elapsed)),
		fmt.Sprintf("Speed: %.1f t/s", session.Speed()),
		fmt.Sprintf("Hits: %d", session.Hits),
		fmt.Sprintf("Accuracy: %.1f%%", session.Accuracy()),
	}

	eased := p.fade * (2 - p.fade)
	clr := render.ScaleAlpha(p.palette.TextLight, eased)
	centerX := p.width / 2
	for i, line := range lines {
		baseY := float64(summaryFirstLineY + i*summaryLineStep)
		y := utils.Lerp(baseY+summarySlidePx, baseY, eased)
		render.DrawCenteredText(screen, p.fontFace, line, centerX, int(y), clr)
	}
}
