package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/willbeason/mandelzoom/pkg/config"
	"github.com/willbeason/mandelzoom/pkg/session"
	"github.com/willbeason/mandelzoom/pkg/surface"
)

type options struct {
	configPath string
	width      int
	height     int
	outDir     string
	zooms      []string
	debug      bool
}

func mainCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a view of the Mandelbrot set to a PNG",
		Example: `  # Render the default view
  render

  # Zoom twice, first into the upper left quarter, then into the middle
  render --zoom 0.25,0.25 --zoom 0.5,0.5`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML file with view and render settings")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Image width in pixels (overrides config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Image height in pixels (overrides config)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Directory to write the image to (overrides config)")
	cmd.Flags().StringArrayVar(&opts.zooms, "zoom", nil, "Normalized x,y position to zoom into before rendering; repeatable")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

func runCmd(cmd *cobra.Command, opts options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	clicks, err := parseZooms(opts.zooms)
	if err != nil {
		return err
	}

	img := surface.NewImage(cfg.Render.Width, cfg.Render.Height)
	s := session.New(cfg.Params(), img, cfg.Render.Width, cfg.Render.Height, session.WithLogger(logger))

	for _, click := range clicks {
		s.ZoomTo(click[0], click[1])
	}

	start := time.Now()
	for s.AdvanceOneRow() {
		if s.Row()%100 == 0 {
			logger.Debug("progress", "row", s.Row(), "height", cfg.Render.Height)
		}
	}
	logger.Info("rendered", "elapsed", time.Since(start), "viewport", s.Viewport())

	path, err := img.Save(cfg.Render.OutDir, time.Now())
	if err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	logger.Info("wrote image", "path", path)

	return nil
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if opts.width != 0 {
		cfg.Render.Width = opts.width
	}
	if opts.height != 0 {
		cfg.Render.Height = opts.height
	}
	if opts.outDir != "" {
		cfg.Render.OutDir = opts.outDir
	}

	return cfg, cfg.Validate()
}

// parseZooms parses "x,y" pairs with both coordinates in [0, 1].
func parseZooms(zooms []string) ([][2]float64, error) {
	clicks := make([][2]float64, 0, len(zooms))

	for _, z := range zooms {
		parts := strings.Split(z, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("zoom %q: want x,y", z)
		}

		var click [2]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("zoom %q: %w", z, err)
			}
			if v < 0 || v > 1 {
				return nil, fmt.Errorf("zoom %q: coordinates must be in [0, 1]", z)
			}
			click[i] = v
		}

		clicks = append(clicks, click)
	}

	return clicks, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
