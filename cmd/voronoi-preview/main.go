package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/voronoi-mcp/internal/preview"
	"github.com/ironsheep/voronoi-mcp/internal/voronoi"
)

func main() {
	regions := flag.Int("regions", 12, "number of seed regions")
	seed := flag.String("seed", "", "seed text (default: current time)")
	mode := flag.String("mode", "per-edge", "blocking mode: per-edge or single-flag")
	step := flag.Int("step", 1, "pixels each free side grows per tick")
	delay := flag.Duration("delay", preview.DefaultDelay, "pause between frames")
	logFile := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	blocking, err := voronoi.ParseBlockingMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voronoi-preview: %v\n", err)
		os.Exit(2)
	}

	// The terminal is taken over, so logs only go to a file
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "voronoi-preview: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		voronoi.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(preview.Options{
		Regions:  *regions,
		Seed:     *seed,
		Blocking: blocking,
		Step:     *step,
		Delay:    *delay,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "voronoi-preview: %v\n", err)
		os.Exit(1)
	}
}

func run(opts preview.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	p := preview.New(screen, opts)
	err = p.Run(ctx)
	if d := p.Diagram(); d != nil {
		voronoi.Logger().Debug("preview closed", "seed", d.Seed(), "ticks", p.Ticks(), "elapsed", time.Since(start))
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
