package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shipq/namecase/cli"
	"github.com/shipq/namecase/internal/config"
	"github.com/shipq/namecase/project"
	"github.com/shipq/namecase/render"
)

const exampleSchema = `model: blog-post
modelPlural: blog-posts
description: A post on the blog
props:
  - name: title
  - name: view-count
    type: int
`

// runInit implements "namecase init". Existing files are never overwritten.
func runInit(dir string, p *cli.Printer) int {
	cfg := config.Default(dir)
	cfg.App.Name = project.Name(dir)

	files := map[string]string{}
	files[filepath.Join(cfg.Render.Schemas, "blog_post.yaml")] = exampleSchema
	for name, text := range render.Examples {
		files[filepath.Join(cfg.Render.Templates, name)] = text
	}

	created := 0
	ok, err := config.Exists(dir)
	if err != nil {
		return p.Error("failed to check for "+config.ConfigFilename, err)
	}
	if ok {
		p.Infof("%s already exists", config.ConfigFilename)
	} else {
		if err := cfg.INI().WriteFile(filepath.Join(dir, config.ConfigFilename)); err != nil {
			return p.Error("failed to write "+config.ConfigFilename, err)
		}
		p.Infof("  Created %s", config.ConfigFilename)
		created++
	}

	for _, rel := range sortedKeys(files) {
		wrote, err := writeIfMissing(filepath.Join(dir, rel), files[rel])
		if err != nil {
			return p.Error("failed to write "+rel, err)
		}
		if wrote {
			p.Infof("  Created %s", rel)
			created++
		}
	}

	if created == 0 {
		p.Success("Project already initialized")
	} else {
		p.Successf("Initialized namecase project in %s", dir)
		p.Info("Run 'namecase render' to generate files.")
	}
	return 0
}

func writeIfMissing(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}
	return true, os.WriteFile(path, []byte(content), 0644)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
