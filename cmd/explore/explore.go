package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/willbeason/mandelzoom/pkg/config"
	"github.com/willbeason/mandelzoom/pkg/session"
	"github.com/willbeason/mandelzoom/pkg/surface"
)

type options struct {
	configPath string
	logFile    string
	fps        int
	debug      bool
}

func mainCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore the Mandelbrot set in the terminal",
		Long: `Renders the Mandelbrot set one row per frame.

Click to zoom 10x into a point, space to pause, r to return to the starting view,
q or Esc to quit.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML file with view settings")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Path to write logs to (discarded if not specified)")
	cmd.Flags().IntVar(&opts.fps, "fps", 0, "Rows drawn per second (overrides config)")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

func runCmd(cmd *cobra.Command, opts options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return err
		}
	}
	if opts.fps != 0 {
		cfg.Explore.FPS = opts.fps
	}
	err := cfg.Validate()
	if err != nil {
		return err
	}

	var w io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	err = screen.Init()
	if err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	return run(cmd.Context(), newExplorer(screen, cfg.Params(), logger), cfg.Explore.FPS)
}

// run drives e from screen events until the user quits or ctx is cancelled.
// A ticker posts one interrupt per frame; each interrupt draws at most one row.
func run(ctx context.Context, e *explorer, fps int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				_ = e.screen.PostEvent(tcell.NewEventInterrupt(nil))
				return
			case <-ticker.C:
				// A full queue means the loop is behind; dropping the frame is fine.
				_ = e.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	for {
		ev := e.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		if e.handle(ev) {
			return nil
		}
	}
}

// An explorer owns the session and the pause flag. The session is only touched from handle.
type explorer struct {
	screen   tcell.Screen
	terminal *surface.Terminal
	session  *session.Session
	params   session.Params
	logger   *slog.Logger

	paused    bool
	mouseDown bool
}

func newExplorer(screen tcell.Screen, params session.Params, logger *slog.Logger) *explorer {
	term := surface.NewTerminal(screen)
	width, height := term.Size()

	return &explorer{
		screen:   screen,
		terminal: term,
		session:  session.New(params, term, width, height, session.WithLogger(logger)),
		params:   params,
		logger:   logger,
	}
}

// handle applies one event and reports whether the user asked to quit.
func (e *explorer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		if !e.paused && !e.session.Done() {
			e.session.AdvanceOneRow()
			e.screen.Show()
		}

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q', ev.Rune() == 'Q':
			return true
		case ev.Rune() == ' ':
			e.paused = !e.paused
			e.logger.Debug("pause toggled", "paused", e.paused, "row", e.session.Row())
		case ev.Rune() == 'r', ev.Rune() == 'R':
			width, height := e.terminal.Size()
			e.session.Initialize(e.params.CenterReal, e.params.CenterImag, e.params.HalfRange, e.params.IterationBound, width, height)
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !e.mouseDown {
			nx, ny := e.terminal.Normalize(ev.Position())
			e.session.ZoomTo(nx, ny)
		}
		e.mouseDown = pressed

	case *tcell.EventResize:
		e.screen.Sync()
		e.terminal.Resize()
		e.session.Resize(e.terminal.Size())
	}

	return false
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
