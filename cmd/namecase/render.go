package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/shipq/namecase/cli"
	"github.com/shipq/namecase/internal/config"
	"github.com/shipq/namecase/logging"
	"github.com/shipq/namecase/render"
	"github.com/shipq/namecase/schemafile"
)

// runRender implements "namecase render".
func runRender(cfg *config.Config, p *cli.Printer) int {
	logger, err := logging.New(cfg.Log.Format, cfg.Log.Level, p.Err)
	if err != nil {
		return p.Error("invalid log settings", err)
	}

	written, err := renderProject(context.Background(), cfg, logger)
	if err != nil {
		return p.Error("render failed", err)
	}

	p.Successf("Rendered %d file(s) into %s", len(written), cfg.Render.Output)
	for _, path := range written {
		rel, err := filepath.Rel(cfg.ConfigDir, path)
		if err != nil {
			rel = path
		}
		p.Infof("  %s", rel)
	}
	return 0
}

// renderProject loads the project's schemas and templates and renders them.
func renderProject(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]string, error) {
	docs, err := schemafile.LoadDir(cfg.Path(cfg.Render.Schemas))
	if err != nil {
		return nil, err
	}
	templates, err := render.LoadTemplates(cfg.Path(cfg.Render.Templates))
	if err != nil {
		return nil, err
	}

	return render.Batch(ctx, render.BatchOptions{
		Documents:   docs,
		Templates:   templates,
		OutputDir:   cfg.Path(cfg.Render.Output),
		Config:      cfg.App,
		Concurrency: cfg.Render.Concurrency,
		Logger:      logger,
	})
}
