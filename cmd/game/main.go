// cmd/game/main.go
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-aim-trainer/internal/audio"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/state"
	"go-aim-trainer/internal/utils"
	"go-aim-trainer/pkg/render"
)

var (
	flagConfig string
	flagSeed   int64
	flagMute   bool
	flagPprof  string
)

var rootCmd = &cobra.Command{
	Use:   "aim-trainer",
	Short: "Aim Trainer - click the targets before they shrink away",
	Long: `Aim Trainer opens a window where circular targets grow and shrink.
Click them while they are still on screen: every target that shrinks
away costs a life, and the session ends when the lives run out.

Examples:
  aim-trainer
  aim-trainer --seed 42
  aim-trainer --config ./my-config.yaml --mute`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagPprof, "pprof", "", "Address for the pprof HTTP server (e.g. localhost:6060)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// AppGame — адаптер машины состояний под ebiten.Game.
type AppGame struct {
	cfg            config.Config
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "aim-trainer",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if flagPprof != "" {
		go func() {
			logger.Error("pprof server stopped", "err", http.ListenAndServe(flagPprof, nil))
		}()
	}

	fonts, err := render.NewFontSet()
	if err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	// Звук не обязателен: без динамика игра просто молчит
	sound := audio.NewSoundManager()
	if !flagMute {
		if initErr := sound.Initialize(); initErr != nil {
			logger.Warn("audio disabled", "err", initErr)
		}
		defer sound.Cleanup()
	}

	deps := state.Deps{
		Cfg:   cfg,
		Fonts: fonts,
		Palette: render.Palette{
			Background: cfg.Colors.Background.Color(),
			TopBar:     cfg.Colors.TopBar.Color(),
			TextDark:   cfg.Colors.TextDark.Color(),
			TextLight:  cfg.Colors.TextLight.Color(),
		},
		Rng:   utils.NewPRNGService(flagSeed),
		Sound: sound,
		Log:   logger,
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, deps))

	app := &AppGame{
		cfg:            cfg,
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TickRate)
	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
