package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/shipq/namecase/cli"
	"github.com/shipq/namecase/internal/config"
	"github.com/shipq/namecase/logging"
	"github.com/shipq/namecase/render"
	"github.com/shipq/namecase/schemafile"
	"github.com/shipq/namecase/watch"
)

// runWatch implements "namecase watch". It renders once, then re-renders
// whenever a schema or template changes, until interrupted.
func runWatch(cfg *config.Config, p *cli.Printer) int {
	logger, err := logging.New(cfg.Log.Format, cfg.Log.Level, p.Err)
	if err != nil {
		return p.Error("invalid log settings", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if written, err := renderProject(ctx, cfg, logger); err != nil {
		p.Warnf("initial render failed: %v", err)
	} else {
		p.Successf("Rendered %d file(s) into %s", len(written), cfg.Render.Output)
	}

	schemas := cfg.Path(cfg.Render.Schemas)
	templates := cfg.Path(cfg.Render.Templates)
	p.Infof("Watching %s and %s (Ctrl-C to stop)", cfg.Render.Schemas, cfg.Render.Templates)

	err = watch.Run(ctx, watch.Options{
		Dirs:   []string{schemas, templates},
		Filter: watchable,
		Logger: logger,
	}, func(ctx context.Context, paths []string) error {
		written, err := renderProject(ctx, cfg, logger)
		if err != nil {
			p.Warnf("render failed: %v", err)
			return err
		}
		p.Successf("Re-rendered %d file(s) after %d change(s)", len(written), len(paths))
		return nil
	})
	if err != nil {
		return p.Error("watch failed", err)
	}
	return 0
}

// watchable reports whether a change to path should trigger a render.
func watchable(path string) bool {
	return schemafile.IsSchemaFile(path) || filepath.Ext(path) == render.TemplateExt
}
