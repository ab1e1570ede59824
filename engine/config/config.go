// Package config loads the viewer settings and the initial scene from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/logging"
	"github.com/1siamBot/surrender/engine/projection"
	"github.com/1siamBot/surrender/engine/view"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Screen     Screen      `yaml:"screen"`
	Controls   Controls    `yaml:"controls"`
	Projection Projection  `yaml:"projection"`
	Clipping   Clipping    `yaml:"clipping"`
	Curves     Curves      `yaml:"curves"`
	Log        Log         `yaml:"log"`
	Scene      []ShapeSpec `yaml:"scene"`
}

type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Border is the inset of the viewport from the screen edges.
	Border int `yaml:"border"`
}

type Controls struct {
	ZoomFactor    float64 `yaml:"zoom_factor"`
	MoveStep      float64 `yaml:"move_step"`
	RotateStepDeg float64 `yaml:"rotate_step_deg"`
}

type Projection struct {
	Mode     string  `yaml:"mode"`
	Distance float64 `yaml:"distance"`
}

type Clipping struct {
	Algorithm string `yaml:"algorithm"`
}

type Curves struct {
	Steps int `yaml:"steps"`
}

type Log struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Screen:     Screen{Width: 1280, Height: 720, Border: 50},
		Controls:   Controls{ZoomFactor: 1.1, MoveStep: 10, RotateStepDeg: 5},
		Projection: Projection{Mode: "parallel", Distance: 800},
		Clipping:   Clipping{Algorithm: clip.Default.String()},
		Curves:     Curves{Steps: 24},
		Log:        Log{Level: "info", Encoding: "console"},
		Scene:      demoScene(),
	}
}

// Load decodes YAML on top of the defaults and validates the result.
// Sections missing from the document keep their default values.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate reports every invalid setting, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs error
	bad := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		bad("screen size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Border < 0 || 2*c.Screen.Border >= min(c.Screen.Width, c.Screen.Height) {
		bad("screen border %d", c.Screen.Border)
	}
	if c.Controls.ZoomFactor <= 1 {
		bad("zoom_factor %v must be greater than 1", c.Controls.ZoomFactor)
	}
	if c.Controls.MoveStep <= 0 {
		bad("move_step %v", c.Controls.MoveStep)
	}
	if c.Controls.RotateStepDeg <= 0 {
		bad("rotate_step_deg %v", c.Controls.RotateStepDeg)
	}
	if _, err := projection.ParseMode(c.Projection.Mode); err != nil {
		bad("%v", err)
	}
	if c.Projection.Distance <= 0 {
		bad("projection distance %v", c.Projection.Distance)
	}
	if _, err := clip.ParseAlgorithm(c.Clipping.Algorithm); err != nil {
		bad("%v", err)
	}
	if c.Curves.Steps < 1 {
		bad("curve steps %d", c.Curves.Steps)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		bad("%v", err)
	}
	if _, err := logging.Config(0, c.Log.Encoding); err != nil {
		bad("%v", err)
	}
	for i, s := range c.Scene {
		if err := s.validate(); err != nil {
			bad("scene[%d]: %v", i, err)
		}
	}
	return errs
}

// Mode is the configured projection; call after Validate.
func (c *Config) Mode() projection.Mode {
	m, _ := projection.ParseMode(c.Projection.Mode)
	return m
}

// Algorithm is the default line clipper; call after Validate.
func (c *Config) Algorithm() clip.Algorithm {
	a, err := clip.ParseAlgorithm(c.Clipping.Algorithm)
	if err != nil {
		return clip.Default
	}
	return a
}

// Window is the initial world window: the screen rectangle on the XY plane.
func (c *Config) Window() (*view.Window, error) {
	return view.NewScreenWindow(float64(c.Screen.Width), float64(c.Screen.Height), c.Projection.Distance)
}

func (c *Config) Viewport() (*view.Viewport, error) {
	return view.NewScreenViewport(float64(c.Screen.Width), float64(c.Screen.Height), float64(c.Screen.Border))
}
