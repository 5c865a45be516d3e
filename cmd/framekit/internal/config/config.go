package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/framekit/pkg/graphics"
)

// FileName is the name of the optional project configuration file.
const FileName = "framekit.yaml"

// Formats lists the output formats of the build command.
var Formats = []string{"table", "json", "svg", "dump"}

// Config represents the optional framekit.yaml configuration.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Build   BuildConfig   `yaml:"build"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name string `yaml:"name,omitempty"`
}

// BuildConfig contains defaults for the build, tap and watch commands.
type BuildConfig struct {
	// Theme is a theme file, relative to the project root.
	Theme string `yaml:"theme,omitempty"`
	// Size is the default zone size, written "WxH".
	Size   string `yaml:"size,omitempty"`
	Format string `yaml:"format,omitempty"`
	// Verbose makes the error handler print stack traces.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Name       string
	// Theme is an absolute path, or empty for the default theme.
	Theme   string
	Size    graphics.Size
	HasSize bool
	Format  string
	Verbose bool
}

// LoadOptional reads framekit.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads framekit.yaml (if present) and resolves defaults. A go.mod in
// dir is optional and only names the project.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Name:       strings.TrimSpace(cfg.Project.Name),
		Format:     strings.TrimSpace(cfg.Build.Format),
		Verbose:    cfg.Build.Verbose,
	}
	if r.Name == "" {
		r.Name = defaultName(modulePath, dir)
	}

	if r.Format == "" {
		r.Format = "table"
	}
	if err := ValidateFormat(r.Format); err != nil {
		return nil, fmt.Errorf("build.format: %w", err)
	}

	if s := strings.TrimSpace(cfg.Build.Size); s != "" {
		size, err := ParseSize(s)
		if err != nil {
			return nil, fmt.Errorf("build.size: %w", err)
		}
		r.Size, r.HasSize = size, true
	}

	if th := strings.TrimSpace(cfg.Build.Theme); th != "" {
		if !filepath.IsAbs(th) {
			th = filepath.Join(dir, th)
		}
		r.Theme = th
	}

	return r, nil
}

// FindProjectRoot walks up from the current directory to the first directory
// holding framekit.yaml or go.mod. Outside of any project it returns the
// current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// ParseSize parses a "WxH" size such as "320x240".
func ParseSize(s string) (graphics.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return graphics.Size{}, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width < 0 {
		return graphics.Size{}, fmt.Errorf("invalid width in size %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height < 0 {
		return graphics.Size{}, fmt.Errorf("invalid height in size %q", s)
	}
	return graphics.Size{Width: width, Height: height}, nil
}

// ValidateFormat reports whether format is one of Formats.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (use %s)", format, strings.Join(Formats, ", "))
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "framekit"
	}
	return base
}
