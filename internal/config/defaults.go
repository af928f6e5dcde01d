// internal/config/defaults.go
package config

import (
	_ "embed"
)

//go:embed defaults/aimtrainer.yaml
var defaultYAML []byte

// DefaultConfig — значения по умолчанию. Размеры и темп совпадают с
// классическим тренажёром: окно 1000x800, мишень раз в 3 секунды,
// радиус до 30 px, три жизни.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:        1000,
			Height:       800,
			Title:        "Aim Trainer",
			TickRate:     60,
			TopBarHeight: 50,
		},
		Session: SessionConfig{
			Lives: 3,
		},
		Targets: TargetsConfig{
			SpawnInterval: 3.0,
			MaxRadius:     30,
			GrowthRate:    12, // 0.2 px за тик при 60 тиках в секунду
			Padding:       30,
		},
		Colors: ColorsConfig{
			Background:      HexColor{R: 0, G: 25, B: 40, A: 255},
			TopBar:          HexColor{R: 128, G: 128, B: 128, A: 255},
			TargetPrimary:   HexColor{R: 255, G: 0, B: 0, A: 255},
			TargetSecondary: HexColor{R: 255, G: 255, B: 255, A: 255},
			TextDark:        HexColor{R: 0, G: 0, B: 0, A: 255},
			TextLight:       HexColor{R: 255, G: 255, B: 255, A: 255},
		},
	}
}
