// Package config loads renderer settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/willbeason/mandelzoom/pkg/session"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	View    View    `toml:"view"`
	Render  Render  `toml:"render"`
	Explore Explore `toml:"explore"`
}

// View holds the viewport a session starts from.
type View struct {
	CenterReal float64 `toml:"center_real"`
	CenterImag float64 `toml:"center_imag"`

	// HalfRange is the distance from the center to the top of the surface.
	HalfRange      float64 `toml:"half_range"`
	IterationBound int     `toml:"iteration_bound"`
	ZoomFactor     float64 `toml:"zoom_factor"`
	HueRange       float64 `toml:"hue_range"`
}

type Render struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	OutDir string `toml:"out_dir"`
}

type Explore struct {
	FPS int `toml:"fps"`
}

func Default() Config {
	return Config{
		View: View{
			CenterReal:     0.0,
			CenterImag:     0.0,
			HalfRange:      1.5,
			IterationBound: 50,
			ZoomFactor:     session.DefaultZoomFactor,
			HueRange:       255,
		},
		Render: Render{
			Width:  1280,
			Height: 720,
			OutDir: "out",
		},
		Explore: Explore{
			FPS: 60,
		},
	}
}

// Load reads path over the defaults. Keys the file sets replace the defaults; unknown keys
// are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if !(c.View.HalfRange > 0) {
		errs = append(errs, fmt.Errorf("%w: view.half_range must be positive, got %v", ErrInvalid, c.View.HalfRange))
	}
	if c.View.IterationBound < 1 {
		errs = append(errs, fmt.Errorf("%w: view.iteration_bound must be at least 1, got %d", ErrInvalid, c.View.IterationBound))
	}
	if !(c.View.ZoomFactor > 0 && c.View.ZoomFactor <= 1) {
		errs = append(errs, fmt.Errorf("%w: view.zoom_factor must be in (0, 1], got %v", ErrInvalid, c.View.ZoomFactor))
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: render size must be positive, got %dx%d", ErrInvalid, c.Render.Width, c.Render.Height))
	}
	if c.Explore.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: explore.fps must be positive, got %d", ErrInvalid, c.Explore.FPS))
	}

	return errors.Join(errs...)
}

// Params converts the view settings into session parameters.
func (c Config) Params() session.Params {
	return session.Params{
		CenterReal:     c.View.CenterReal,
		CenterImag:     c.View.CenterImag,
		HalfRange:      c.View.HalfRange,
		IterationBound: c.View.IterationBound,
		ZoomFactor:     c.View.ZoomFactor,
		HueRange:       c.View.HueRange,
	}
}
