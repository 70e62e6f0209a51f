package main

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shipq/namecase/casing"
	"github.com/shipq/namecase/cli"
	"github.com/shipq/namecase/variations"
)

const namesUsage = `Usage: namecase names <model> [plural] [--json | --yaml]

Prints the eight name variations of a model. When plural is omitted it is
derived from model.

Examples:
  namecase names blog-post
  namecase names person people --json
`

// runNames implements "namecase names".
func runNames(args []string, p *cli.Printer) int {
	format := "table"
	var positional []string
	for _, arg := range args {
		switch arg {
		case "--json":
			format = "json"
		case "--yaml":
			format = "yaml"
		case "-h", "--help":
			p.Info(strings.TrimSuffix(namesUsage, "\n"))
			return 0
		default:
			if strings.HasPrefix(arg, "-") {
				return p.Usage("unknown flag "+arg, namesUsage)
			}
			positional = append(positional, arg)
		}
	}

	if len(positional) == 0 || len(positional) > 2 {
		return p.Usage("'namecase names' takes a model and an optional plural", namesUsage)
	}

	s := variations.Schema{Model: variations.Name(positional[0])}
	if len(positional) == 2 {
		s.ModelPlural = variations.Name(positional[1])
	}
	s.Normalize()
	names := variations.ModelNameVariations(s)

	switch format {
	case "json":
		out, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return p.Error("failed to encode names", err)
		}
		p.Info(string(out))
	case "yaml":
		out, err := yaml.Marshal(names)
		if err != nil {
			return p.Error("failed to encode names", err)
		}
		p.Info(strings.TrimSuffix(string(out), "\n"))
	default:
		var rows [][2]string
		for _, f := range names.Fields() {
			rows = append(rows, [2]string{f.Key, f.Value})
		}
		p.KeyValues(rows)
	}
	return 0
}

const convertUsage = `Usage: namecase convert <transform> <input>...

Applies a casing transform to each input and prints one result per line.
Run 'namecase list' for the available transforms.
`

// runConvert implements "namecase convert".
func runConvert(args []string, p *cli.Printer) int {
	if len(args) < 2 {
		return p.Usage("'namecase convert' requires a transform and at least one input", convertUsage)
	}

	fn, ok := casing.Lookup(args[0])
	if !ok {
		return p.Usage("unknown transform "+args[0], convertUsage)
	}
	for _, in := range args[1:] {
		p.Info(fn(in))
	}
	return 0
}

// runList implements "namecase list".
func runList(p *cli.Printer) int {
	for _, name := range casing.Names() {
		p.Info(name)
	}
	return 0
}
