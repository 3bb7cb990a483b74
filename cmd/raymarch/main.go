package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/raymarch/config"
	"github.com/lixenwraith/raymarch/engine"
	"github.com/lixenwraith/raymarch/march"
	"github.com/lixenwraith/raymarch/render"
	"github.com/lixenwraith/raymarch/sdf"
	"github.com/lixenwraith/raymarch/shade"
	"github.com/lixenwraith/raymarch/terminal"
)

// Frame pacing per variant
const (
	flatInterval = time.Second
	litInterval  = time.Second / 60
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "raymarch: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("raymarch: start %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	presenter, cleanup, err := newPresenter(stop, cfg)
	if err != nil {
		return err
	}

	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			cleanup()
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRAYMARCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer cleanup()

	field := sdf.Default()
	marcher := march.New(field, newShader(cfg, field))
	marcher.Workers = cfg.Workers

	loop := &engine.Loop{
		Renderer:  marcher,
		Presenter: presenter,
		Pacer:     newPacer(cfg),
		Frame:     render.NewFrame(shade.Empty),
		Frames:    cfg.Frames,
	}
	return loop.Run(ctx)
}

func newShader(cfg config.Config, field sdf.Field) shade.Shader {
	if cfg.Variant == config.VariantFlat {
		return shade.Flat{}
	}
	return shade.NewLit(field)
}

func newPacer(cfg config.Config) engine.Pacer {
	if cfg.Variant == config.VariantFlat {
		return engine.NewSleepPacer(flatInterval)
	}
	p := engine.NewSpinPacer(litInterval)
	p.Nap = time.Duration(cfg.NapMS) * time.Millisecond
	return p
}

// newPresenter opens the configured backend, cleanup is always safe to call
func newPresenter(cancel context.CancelFunc, cfg config.Config) (terminal.Presenter, func(), error) {
	info := terminal.Probe(os.Stdout)
	if info.IsTerminal && !info.Fits() {
		log.Printf("raymarch: terminal %dx%d is smaller than frame %dx%d",
			info.Width, info.Height, render.Width, render.Height)
	}

	if cfg.Backend == config.BackendTcell {
		screen, err := terminal.OpenScreen(os.Stdout)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
		}
		screen.Watch(cancel)
		return screen, screen.Fini, nil
	}

	if !info.IsTerminal {
		log.Printf("raymarch: stdout is not a terminal, writing raw frame stream")
	}
	return terminal.NewANSIPresenter(os.Stdout), func() {}, nil
}
