package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shipq/namecase/logging"
	"github.com/shipq/namecase/schemafile"
	"github.com/shipq/namecase/variations"
)

// ErrOutsideOutput is returned by Batch when a schema's names would place a
// rendered file outside the output directory.
var ErrOutsideOutput = errors.New("output path escapes the output directory")

// BatchOptions configures Batch.
type BatchOptions struct {
	Documents   []schemafile.Document
	Templates   []*Template
	OutputDir   string
	Config      variations.Config
	Concurrency int
	Logger      *slog.Logger
}

// Batch renders every template for every document into OutputDir and
// returns the written paths, sorted. Rendering stops at the first error.
// Two jobs that resolve to the same output path are reported as an error
// before anything is written.
func Batch(ctx context.Context, opts BatchOptions) ([]string, error) {
	logger := logging.OrDiscard(opts.Logger)
	start := time.Now()

	type job struct {
		doc  schemafile.Document
		tmpl *Template
		path string
	}

	var jobs []job
	owners := make(map[string]string)
	for _, doc := range opts.Documents {
		names := variations.ModelNameVariations(doc.Schema)
		for _, t := range opts.Templates {
			path := filepath.Join(opts.OutputDir, t.OutputPath(names))
			if !within(opts.OutputDir, path) {
				return nil, fmt.Errorf("%w: %s renders %s to %s", ErrOutsideOutput, doc.Path, t.Name, path)
			}
			if prev, ok := owners[path]; ok {
				return nil, fmt.Errorf("%s and %s both render to %s", prev, doc.Path, path)
			}
			owners[path] = doc.Path
			jobs = append(jobs, job{doc: doc, tmpl: t, path: path})
		}
	}

	logger.Info("render_started",
		"schemas", len(opts.Documents),
		"templates", len(opts.Templates),
		"output", opts.OutputDir,
	)

	g, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	var mu sync.Mutex
	written := make([]string, 0, len(jobs))

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data := NewData(j.doc.Schema, opts.Config)
			out, err := j.tmpl.Bytes(data)
			if err != nil {
				return err
			}
			if err := writeFile(j.path, out); err != nil {
				return err
			}
			logger.Debug("file_rendered", "schema", j.doc.Path, "template", j.tmpl.Name, "path", j.path)

			mu.Lock()
			written = append(written, j.path)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(written)
	logger.Info("render_completed",
		"files", len(written),
		"duration_ms", float64(time.Since(start).Nanoseconds())/1e6,
	)
	return written, nil
}

// within reports whether path is strictly inside dir.
func within(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil || rel == "." || filepath.IsAbs(rel) {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
