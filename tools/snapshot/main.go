// Command snapshot renders a scene config to a PNG without opening a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/config"
	"github.com/1siamBot/surrender/engine/logging"
	"github.com/1siamBot/surrender/engine/projection"
	"github.com/1siamBot/surrender/engine/raster"
	"github.com/1siamBot/surrender/engine/scene"
)

var background = color.RGBA{20, 20, 28, 255}

type options struct {
	mode      string
	algorithm string
	gliphs    bool
}

// snapshot draws the configured scene. Shapes that fail to project are
// reported in the returned error; the image holds everything else.
func snapshot(cfg *config.Config, opts options, logger *zap.Logger) (*image.RGBA, error) {
	mode := cfg.Mode()
	if opts.mode != "" {
		m, err := projection.ParseMode(opts.mode)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	s, err := cfg.BuildScene(logger)
	if err != nil {
		return nil, err
	}
	if opts.algorithm != "" {
		a, err := clip.ParseAlgorithm(opts.algorithm)
		if err != nil {
			return nil, err
		}
		s.SetAlgorithmAll(a)
	}
	w, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	vp, err := cfg.Viewport()
	if err != nil {
		return nil, err
	}

	canvas := raster.NewCanvas(cfg.Screen.Width, cfg.Screen.Height, background)
	out, renderErr := s.RenderAll(w, vp, mode)
	canvas.DrawAll(out)
	if opts.gliphs {
		canvas.DrawAll(scene.Gliphs(vp))
	}
	return canvas.Image(), renderErr
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file (defaults to the built-in demo scene)")
	outPath := flag.String("out", "snapshot.png", "output PNG path")
	mode := flag.String("mode", "", "projection mode override: parallel or perspective")
	algo := flag.String("algorithm", "", "clipping algorithm for shapes without their own: liang-barsky or cohen-sutherland")
	scale := flag.Float64("scale", 1, "resample the output by this factor")
	gliphs := flag.Bool("gliphs", true, "draw the viewport frame and center marker")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger, err := logging.New(*level, "console")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg := config.Default()
	if *cfgPath != "" {
		if cfg, err = config.LoadFile(*cfgPath); err != nil {
			logger.Fatal("cannot load config", zap.Error(err))
		}
	}

	img, err := snapshot(cfg, options{mode: *mode, algorithm: *algo, gliphs: *gliphs}, logger)
	if img == nil {
		logger.Fatal("cannot render", zap.Error(err))
	}
	if err != nil {
		logger.Warn("some shapes were skipped", zap.Int("count", len(multierr.Errors(err))), zap.Error(err))
	}
	if *scale != 1 {
		if *scale <= 0 {
			logger.Fatal("invalid scale", zap.Float64("scale", *scale))
		}
		img = raster.ScaleBy(img, *scale)
	}

	if err := write(*outPath, img); err != nil {
		logger.Fatal("cannot write snapshot", zap.Error(err))
	}
	logger.Info("snapshot written", zap.String("path", *outPath),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
}

func write(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()
	if err := raster.WritePNG(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
