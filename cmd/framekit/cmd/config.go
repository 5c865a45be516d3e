package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/framekit/cmd/framekit/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved project configuration",
		Long: `Show the configuration the other commands run with.

The project root is the nearest directory holding framekit.yaml or go.mod.
framekit.yaml is optional:

  project:
    name: inbox
  build:
    theme: themes/dark.toml
    size: 320x240
    format: table
    verbose: false`,
		Usage: "framekit config",
		Run:   runConfig,
	})
}

var keyStyle = lipgloss.NewStyle().Bold(true).Width(10)

func runConfig(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("config takes no arguments")
	}
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	size := "document, terminal or " + fallbackSize.String()
	if cfg.HasSize {
		size = cfg.Size.String()
	}
	orDefault := func(s, def string) string {
		if s == "" {
			return def
		}
		return s
	}

	for _, kv := range [][2]string{
		{"root", cfg.Root},
		{"module", orDefault(cfg.ModulePath, "none")},
		{"name", cfg.Name},
		{"theme", orDefault(cfg.Theme, "default")},
		{"size", size},
		{"format", cfg.Format},
		{"verbose", fmt.Sprint(cfg.Verbose)},
	} {
		fmt.Fprintln(stdout, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(kv[0]), kv[1]))
	}
	return nil
}
