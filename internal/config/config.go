// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// MaxDeltaTime — потолок для deltaTime, защита от скачка симуляции
	// после зависания кадра.
	MaxDeltaTime = 0.06
)

// Config — все игровые настройки. Собирается один раз при запуске и дальше
// передаётся по значению, никто её не меняет.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Session SessionConfig `yaml:"session"`
	Targets TargetsConfig `yaml:"targets"`
	Colors  ColorsConfig  `yaml:"colors"`
}

// WindowConfig — окно и такт игрового цикла.
type WindowConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Title        string `yaml:"title"`
	TickRate     int    `yaml:"tick_rate"`      // ticks per second
	TopBarHeight int    `yaml:"top_bar_height"` // pixels
}

// SessionConfig — правила сессии.
type SessionConfig struct {
	Lives int `yaml:"lives"`
}

// TargetsConfig — жизненный цикл мишени.
type TargetsConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds
	MaxRadius     float64 `yaml:"max_radius"`     // pixels
	GrowthRate    float64 `yaml:"growth_rate"`    // pixels per second
	Padding       float64 `yaml:"padding"`        // отступ точки спавна от краёв поля
}

// ColorsConfig — палитра. В YAML цвета записываются как "#RRGGBB".
type ColorsConfig struct {
	Background      HexColor `yaml:"background"`
	TopBar          HexColor `yaml:"top_bar"`
	TargetPrimary   HexColor `yaml:"target_primary"`
	TargetSecondary HexColor `yaml:"target_secondary"`
	TextDark        HexColor `yaml:"text_dark"`
	TextLight       HexColor `yaml:"text_light"`
}

// Validate проверяет, что конфиг пригоден для запуска.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.Window.TickRate)
	}
	if c.Window.TopBarHeight < 0 || c.Window.TopBarHeight >= c.Window.Height {
		return fmt.Errorf("top bar height %d does not fit window height %d", c.Window.TopBarHeight, c.Window.Height)
	}
	if c.Session.Lives <= 0 {
		return fmt.Errorf("lives must be positive, got %d", c.Session.Lives)
	}
	if c.Targets.SpawnInterval <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %g", c.Targets.SpawnInterval)
	}
	if c.Targets.MaxRadius <= 0 {
		return fmt.Errorf("max radius must be positive, got %g", c.Targets.MaxRadius)
	}
	if c.Targets.GrowthRate <= 0 {
		return fmt.Errorf("growth rate must be positive, got %g", c.Targets.GrowthRate)
	}
	if c.Targets.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %g", c.Targets.Padding)
	}
	fieldW := float64(c.Window.Width) - 2*c.Targets.Padding
	fieldH := float64(c.Window.Height-c.Window.TopBarHeight) - 2*c.Targets.Padding
	if fieldW <= 0 || fieldH <= 0 {
		return fmt.Errorf("padding %g leaves no playfield in %dx%d window", c.Targets.Padding, c.Window.Width, c.Window.Height)
	}
	return nil
}

// HexColor — color.RGBA, который умеет читаться из YAML-строки "#RRGGBB".
type HexColor color.RGBA

// Color возвращает обычный color.RGBA.
func (c HexColor) Color() color.RGBA {
	return color.RGBA(c)
}

// UnmarshalYAML реализует yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := parseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func parseHexColor(s string) (HexColor, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return HexColor{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("color %q: %w", s, err)
	}
	return HexColor{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
