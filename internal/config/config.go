// Package config provides configuration loading from namecase.ini.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shipq/namecase/inifile"
	"github.com/shipq/namecase/logging"
	"github.com/shipq/namecase/variations"
)

// ConfigFilename is the name of the config file.
const ConfigFilename = "namecase.ini"

// LogLevelEnv overrides [log] level when set.
const LogLevelEnv = "NAMECASE_LOG_LEVEL"

// ValidLogFormats is the list of supported [log] format values.
var ValidLogFormats = []string{"json", "pretty", "text"}

// Config holds the complete configuration from namecase.ini.
type Config struct {
	// ConfigDir is the directory containing namecase.ini (the project root).
	ConfigDir string

	App    variations.Config
	Render RenderConfig
	Log    LogConfig
}

// RenderConfig holds template rendering settings from the [render] section.
type RenderConfig struct {
	Schemas     string // Directory of schema files
	Templates   string // Directory of *.tmpl files
	Output      string // Directory rendered files are written to
	Concurrency int    // Maximum files rendered at once
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Format string
	Level  string
}

// Default returns the configuration used when namecase.ini sets nothing.
func Default(dir string) *Config {
	return &Config{
		ConfigDir: dir,
		App: variations.Config{
			Name: filepath.Base(dir),
		},
		Render: RenderConfig{
			Schemas:     "schemas",
			Templates:   "templates",
			Output:      "generated",
			Concurrency: 4,
		},
		Log: LogConfig{
			Format: "pretty",
			Level:  "info",
		},
	}
}

// Load reads namecase.ini from the given directory (or CWD if empty).
// Returns an error if namecase.ini is not found.
func Load(dir string) (*Config, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	iniPath := filepath.Join(dir, ConfigFilename)
	if _, err := os.Stat(iniPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found in %s\n"+
			"  Hint: Run 'namecase init' to create one, or run from the project root",
			ConfigFilename, dir)
	}

	f, err := inifile.ParseFile(iniPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFilename, err)
	}

	cfg := Default(dir)
	parseAppSection(f, &cfg.App)
	if err := parseRenderSection(f, &cfg.Render); err != nil {
		return nil, err
	}
	if err := parseLogSection(f, &cfg.Log); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseAppSection parses the [app] section.
func parseAppSection(f *inifile.File, app *variations.Config) {
	if v := f.Get("app", "id"); v != "" {
		app.ID = v
	}
	if v := f.Get("app", "name"); v != "" {
		app.Name = v
	}
	if v := f.Get("app", "application"); v != "" {
		app.Application = v
	}
	if v := f.Get("app", "scope"); v != "" {
		app.Scope = v
	}
}

// parseRenderSection parses the [render] section.
func parseRenderSection(f *inifile.File, cfg *RenderConfig) error {
	if v := f.Get("render", "schemas"); v != "" {
		cfg.Schemas = v
	}
	if v := f.Get("render", "templates"); v != "" {
		cfg.Templates = v
	}
	if v := f.Get("render", "output"); v != "" {
		if filepath.IsAbs(v) {
			return fmt.Errorf("%s: render.output must be a relative path, got %q", ConfigFilename, v)
		}
		cfg.Output = v
	}
	if v := f.Get("render", "concurrency"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return fmt.Errorf("%s: render.concurrency must be a positive integer, got %q", ConfigFilename, v)
		}
		cfg.Concurrency = n
	}
	return nil
}

// parseLogSection parses the [log] section and applies the env override.
func parseLogSection(f *inifile.File, cfg *LogConfig) error {
	if v := f.Get("log", "format"); v != "" {
		format := strings.ToLower(strings.TrimSpace(v))
		if !isValidFormat(format) {
			return fmt.Errorf("%s: invalid log.format value %q\n"+
				"  Supported formats: %s",
				ConfigFilename, v, strings.Join(ValidLogFormats, ", "))
		}
		cfg.Format = format
	}
	if v := f.Get("log", "level"); v != "" {
		cfg.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(LogLevelEnv); v != "" {
		cfg.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if _, err := logging.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("%s: invalid log.level value %q (or %s)\n"+
			"  Supported levels: debug, info, warn, error",
			ConfigFilename, cfg.Level, LogLevelEnv)
	}
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidLogFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Path resolves p against the config directory unless it is absolute.
func (c *Config) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ConfigDir, p)
}

// INI converts the configuration back into an INI document.
func (c *Config) INI() *inifile.File {
	f := &inifile.File{}
	f.Set("app", "name", c.App.Name)
	if c.App.Application != "" {
		f.Set("app", "application", c.App.Application)
	}
	if c.App.Scope != "" {
		f.Set("app", "scope", c.App.Scope)
	}
	f.Set("render", "schemas", c.Render.Schemas)
	f.Set("render", "templates", c.Render.Templates)
	f.Set("render", "output", c.Render.Output)
	f.Set("render", "concurrency", strconv.Itoa(c.Render.Concurrency))
	f.Set("log", "format", c.Log.Format)
	f.Set("log", "level", c.Log.Level)
	return f
}

// Exists checks if namecase.ini exists in the given directory.
func Exists(dir string) (bool, error) {
	_, err := os.Stat(filepath.Join(dir, ConfigFilename))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
