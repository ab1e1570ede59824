package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/1siamBot/surrender/engine/config"
	"github.com/1siamBot/surrender/engine/control"
	"github.com/1siamBot/surrender/engine/input"
	"github.com/1siamBot/surrender/engine/logging"
	"github.com/1siamBot/surrender/engine/render"
	"github.com/1siamBot/surrender/engine/scene"
)

// Viewer implements ebiten.Game interface
type Viewer struct {
	ctrl     *control.Controller
	input    *input.InputState
	renderer *render.ShapeRenderer
	log      *zap.Logger
	border   float64

	width, height int
	drawables     []scene.Drawable
	failed        int
}

func NewViewer(cfg *config.Config, logger *zap.Logger) (*Viewer, error) {
	s, err := cfg.BuildScene(logger)
	if err != nil {
		return nil, err
	}
	w, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	vp, err := cfg.Viewport()
	if err != nil {
		return nil, err
	}
	c := cfg.Controls
	ctrl := control.NewController(w, vp, s, control.StepsFromDegrees(c.ZoomFactor, c.MoveStep, c.RotateStepDeg), logger)
	ctrl.Mode = cfg.Mode()
	ctrl.Algorithm = cfg.Algorithm()

	return &Viewer{
		ctrl:     ctrl,
		input:    input.NewInputState(),
		renderer: render.NewShapeRenderer(),
		log:      logger,
		border:   float64(cfg.Screen.Border),
		width:    cfg.Screen.Width,
		height:   cfg.Screen.Height,
	}, nil
}

func (v *Viewer) Update() error {
	v.input.Update()

	for _, cmd := range v.input.Commands {
		if err := v.ctrl.Apply(cmd); err != nil {
			if errors.Is(err, control.ErrQuit) {
				return ebiten.Termination
			}
			v.log.Warn("command failed", zap.Stringer("command", cmd), zap.Error(err))
		}
	}
	if dx, dy, ok := v.input.DragDelta(); ok {
		v.ctrl.Drag(float64(dx), float64(dy))
	}
	if err := v.ctrl.Scroll(v.input.ScrollY); err != nil {
		v.log.Warn("zoom failed", zap.Error(err))
	}

	// per-shape failures are logged by the scene
	var err error
	v.drawables, err = v.ctrl.Render()
	v.failed = len(multierr.Errors(err))
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.DrawAll(screen, v.drawables)
	for _, g := range scene.Gliphs(v.ctrl.Viewport) {
		v.renderer.Draw(screen, g)
	}
	v.drawHUD(screen)
}

func (v *Viewer) drawHUD(screen *ebiten.Image) {
	info := fmt.Sprintf("SurRender | %s | shapes %d, drawn %d, failed %d | FPS %.0f\n"+
		"[arrows/WASD] move  [+/-/wheel] zoom  [X/Y/Z, shift] rotate  [P] projection  [C] clipping  [R] reset  [Q] quit",
		v.ctrl.Status(), v.ctrl.Scene.Len(), len(v.drawables), v.failed, ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, info)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		if err := v.ctrl.Resize(float64(outsideWidth), float64(outsideHeight), v.border); err != nil {
			v.log.Warn("resize ignored", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight), zap.Error(err))
			return v.width, v.height
		}
		v.width, v.height = outsideWidth, outsideHeight
	}
	return v.width, v.height
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file (defaults to the built-in demo scene)")
	level := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadFile(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	viewer, err := NewViewer(cfg, logger)
	if err != nil {
		logger.Fatal("cannot build scene", zap.Error(err))
	}
	logger.Info("viewer starting",
		zap.Int("shapes", viewer.ctrl.Scene.Len()),
		zap.Stringer("mode", viewer.ctrl.Mode),
		zap.Stringer("clipping", viewer.ctrl.Algorithm))

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("SurRender")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		logger.Fatal("viewer stopped", zap.Error(err))
	}
}
