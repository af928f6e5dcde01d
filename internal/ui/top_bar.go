// internal/ui/top_bar.go
package ui

import (
	"fmt"

	"go-aim-trainer/internal/app"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/utils"
	"go-aim-trainer/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	timeLabelX  = 5
	speedLabelX = 200
	hitsLabelX  = 450
	livesLabelX = 650
)

// TopBar — верхняя панель со временем, темпом, попаданиями и жизнями.
type TopBar struct {
	cfg      config.Config
	fontFace font.Face
	palette  render.Palette
	baseline int
}

func NewTopBar(cfg config.Config, fontFace font.Face, palette render.Palette) *TopBar {
	metrics := fontFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	return &TopBar{
		cfg:      cfg,
		fontFace: fontFace,
		palette:  palette,
		// Базовая линия, при которой текст стоит по центру полосы.
		baseline: (cfg.Window.TopBarHeight + ascent) / 2,
	}
}

func (b *TopBar) Draw(screen *ebiten.Image, session *app.Session) {
	vector.DrawFilledRect(screen, 0, 0, float32(b.cfg.Window.Width), float32(b.cfg.Window.TopBarHeight), b.palette.TopBar, true)

	textColor := b.palette.TextDark
	timeLabel := fmt.Sprintf("Time: %s", utils.FormatDuration(session.Elapsed))
	speedLabel := fmt.Sprintf("Speed: %.1f t/s", session.Speed())
	hitsLabel := fmt.Sprintf("Hits: %d", session.Hits)
	livesLabel := fmt.Sprintf("Lives: %d", session.LivesLeft())

	text.Draw(screen, timeLabel, b.fontFace, timeLabelX, b.baseline, textColor)
	text.Draw(screen, speedLabel, b.fontFace, speedLabelX, b.baseline, textColor)
	text.Draw(screen, hitsLabel, b.fontFace, hitsLabelX, b.baseline, textColor)
	text.Draw(screen, livesLabel, b.fontFace, livesLabelX, b.baseline, textColor)
}
