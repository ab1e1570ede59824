package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/1siamBot/surrender/engine/config"
	"github.com/1siamBot/surrender/engine/control"
	"github.com/1siamBot/surrender/engine/geom"
	"github.com/1siamBot/surrender/engine/logging"
	"github.com/1siamBot/surrender/engine/scene"
	"github.com/1siamBot/surrender/engine/term"
)

// statusRows are kept free below the viewport
const statusRows = 2

func main() {
	cfgPath := flag.String("config", "", "YAML config file (defaults to the built-in demo scene)")
	level := flag.String("log-level", "warn", "log level; logs go to stderr")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadFile(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	logger, err := logging.New(*level, cfg.Log.Encoding)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("termview stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	sc, err := cfg.BuildScene(logger)
	if err != nil {
		return err
	}
	w, err := cfg.Window()
	if err != nil {
		return err
	}
	vp, err := cfg.Viewport()
	if err != nil {
		return err
	}
	c := cfg.Controls
	ctrl := control.NewController(w, vp, sc, control.StepsFromDegrees(c.ZoomFactor, c.MoveStep, c.RotateStepDeg), logger)
	ctrl.Mode = cfg.Mode()
	ctrl.Algorithm = cfg.Algorithm()
	if err := fit(ctrl, s); err != nil {
		return err
	}

	// The poller owns PollEvent; everything else happens on this goroutine.
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	drawer := term.NewDrawer(s)
	ticker := time.NewTicker(40 * time.Millisecond)
	defer ticker.Stop()
	dirty := true

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd := term.KeyCommand(ev)
				if err := ctrl.Apply(cmd); err != nil {
					if errors.Is(err, control.ErrQuit) {
						return nil
					}
					logger.Warn("command failed", zap.Stringer("command", cmd), zap.Error(err))
				}
				dirty = true
			case *tcell.EventResize:
				if err := fit(ctrl, s); err != nil {
					logger.Warn("resize ignored", zap.Error(err))
				}
				s.Sync()
				dirty = true
			}
		case <-ticker.C:
			if !dirty {
				continue
			}
			dirty = false
			draw(s, drawer, ctrl)
		}
	}
}

// fit stretches the viewport over the terminal, one cell per unit. The
// world window keeps its configured size.
func fit(ctrl *control.Controller, s tcell.Screen) error {
	cols, rows := s.Size()
	return ctrl.Viewport.Resize(geom.V2(1, 1), geom.V2(float64(cols-2), float64(rows-statusRows-1)))
}

func draw(s tcell.Screen, drawer *term.Drawer, ctrl *control.Controller) {
	s.Clear()
	out, err := ctrl.Render()
	drawer.DrawAll(out)
	drawer.DrawAll(scene.Gliphs(ctrl.Viewport))

	_, rows := s.Size()
	status := fmt.Sprintf("%s | shapes %d, drawn %d, failed %d",
		ctrl.Status(), ctrl.Scene.Len(), len(out), len(multierr.Errors(err)))
	drawer.DrawText(1, rows-2, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), status)
	drawer.DrawText(1, rows-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		"arrows/wasd move  +/- zoom  x/y/z rotate (shift reverses)  p projection  c clipping  r reset  q quit")
	s.Show()
}
