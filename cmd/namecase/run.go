package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shipq/namecase/cli"
	"github.com/shipq/namecase/internal/config"
	"github.com/shipq/namecase/project"
)

const usage = `namecase - identifier casing and model name scaffolding

Usage:
  namecase [--project <dir>] <command> [arguments]

Commands:
  names <model> [plural]    Print the name variations of a model
  convert <transform> <s>   Apply a casing transform to each input
  list                      List the available casing transforms
  render                    Render every schema through every template
  watch                     Render, then re-render when files change
  init                      Create namecase.ini and starter files

Options:
  --project <dir>  Use the project at <dir> instead of searching upward
  -h, --help       Show this help message
`

// run dispatches commands and returns an exit code.
func run(args []string) int {
	return runWithOutput(args, os.Stdout, os.Stderr)
}

// runWithOutput dispatches commands with custom output writers.
func runWithOutput(args []string, stdout, stderr io.Writer) int {
	p := &cli.Printer{Out: stdout, Err: stderr}

	var projectPath string
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--project" {
			if i+1 >= len(args) {
				return p.Error("--project requires a path argument", nil)
			}
			projectPath = args[i+1]
			i++
			continue
		}
		if strings.HasPrefix(arg, "--project=") {
			projectPath = strings.TrimPrefix(arg, "--project=")
			continue
		}

		remaining = args[i:]
		break
	}

	if len(remaining) == 0 {
		fmt.Fprint(stdout, usage)
		return 0
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "help", "--help", "-h":
		fmt.Fprint(stdout, usage)
		return 0

	case "names":
		return runNames(cmdArgs, p)

	case "convert":
		return runConvert(cmdArgs, p)

	case "list":
		return runList(p)

	case "init":
		dir := projectPath
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return p.Error("failed to get current directory", err)
			}
			dir = cwd
		}
		return runInit(dir, p)

	case "render":
		cfg, code := loadConfig(projectPath, p)
		if cfg == nil {
			return code
		}
		return runRender(cfg, p)

	case "watch":
		cfg, code := loadConfig(projectPath, p)
		if cfg == nil {
			return code
		}
		return runWatch(cfg, p)

	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n\n", cmd)
		fmt.Fprint(stderr, usage)
		return 1
	}
}

// loadConfig finds the project and loads its namecase.ini. On failure it
// reports the error and returns a nil config with the exit code.
func loadConfig(projectPath string, p *cli.Printer) (*config.Config, int) {
	root := projectPath
	if root == "" {
		var err error
		root, err = project.FindRoot()
		if err != nil {
			return nil, p.Error("failed to find project", err)
		}
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, p.Error("failed to load config", err)
	}
	return cfg, 0
}
