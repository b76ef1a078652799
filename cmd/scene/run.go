package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	scene "github.com/grindlemire/go-scene"
	"github.com/grindlemire/go-scene/internal/debug"
	"github.com/grindlemire/go-scene/internal/inspect"
)

// runRun implements the run subcommand.
// It runs several pages, each its own System on its own goroutine, and
// prints a summary when the duration elapses or on Ctrl+C.
func runRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	pages := fs.Int("pages", 2, "number of pages")
	bases := fs.Int("bases", 2, "bases per page")
	duration := fs.Duration("duration", 3*time.Second, "how long to run")
	inspectAddr := fs.String("inspect", "", "serve live stats on this address")
	verbose := fs.Bool("v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pages < 1 || *bases < 1 {
		return fmt.Errorf("pages and bases must be at least 1")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if cfg.DebugLog != "" {
		if err := debug.Init(cfg.DebugLog); err != nil {
			return err
		}
		defer debug.Close()
	}
	logger := debug.Logger()
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *duration)
	defer cancel()

	var insp *inspect.Server
	if *inspectAddr != "" {
		insp = inspect.NewServer(*inspectAddr, logger)
		if err := insp.Start(); err != nil {
			return err
		}
		defer insp.Stop(context.Background())
		fmt.Printf("inspector on http://%s\n", insp.Addr())
	}

	all := make([]*page, *pages)
	for i := range all {
		p, err := newPage(fmt.Sprintf("page-%d", i), cfg, logger, *bases)
		if err != nil {
			return err
		}
		all[i] = p
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, p := range all {
		if insp != nil {
			p.sys.On(scene.EventExitFrame, func(s *scene.System) {
				insp.Publish(p.name, s.Stats())
			})
		}
		g.Go(func() error {
			return p.sys.Run(ctx)
		})
		g.Go(func() error {
			return feed(ctx, p)
		})
	}
	if *configPath != "" {
		g.Go(func() error {
			return watchConfig(ctx, *configPath, logger, func(cfg scene.Config) {
				for _, p := range all {
					p.sys.QueueUpdate(func() {
						if err := p.sys.Apply(cfg); err != nil {
							logger.Warn("config not applied", "page", p.name, "error", err)
						}
					})
				}
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printSummary(os.Stdout, all)
	return nil
}

// feed posts new data to a page from outside its tick goroutine, the way a
// network client would.
func feed(ctx context.Context, p *page) error {
	ticker := time.NewTicker(400 * time.Millisecond)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.sys.QueueUpdate(func() { p.refresh(i) })
		}
	}
}
