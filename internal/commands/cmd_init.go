package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/mvelders/baedeker/internal/core/config"
	"github.com/mvelders/baedeker/internal/core/styles"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
	city  string
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize baedeker configuration and starter content",
		UsageText: "baedeker init [options]",
		Description: `Sets up baedeker for first-time use.

The wizard will:
  - Generate the config file with sensible defaults
  - Create the content directory with a starter guide

Use --yes to accept all defaults without prompts.
Use --force to overwrite an existing configuration.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "city",
				Usage:       "city the guide covers",
				Destination: &cmd.city,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(_ context.Context, _ *cli.Command) error {
	configPath := cmd.flags.ConfigPath

	if _, err := os.Stat(configPath); err == nil && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", configPath)
		}
		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(configPath + "\nOverwrite?").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	cfg.ContentDir = filepath.Join(cmd.flags.DataDir, "content")
	if cmd.city != "" {
		cfg.Guide.City = cmd.city
	}
	writeSample := true

	if !cmd.yes {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("City").
				Description("The city this guide covers").
				Value(&cfg.Guide.City),
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(styles.ThemeNames()...)...).
				Value(&cfg.TUI.Theme),
			huh.NewConfirm().
				Title("Write starter guide content?").
				Description("A few sample activities under "+cfg.ContentDir).
				Value(&writeSample),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := writeConfig(&cfg, configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Println("Wrote config:", configPath)

	if writeSample {
		if err := writeStarterContent(cfg.ContentDir); err != nil {
			return fmt.Errorf("write starter content: %w", err)
		}
		fmt.Println("Wrote starter content:", cfg.ContentDir)
	}

	fmt.Println("Run `baedeker` to open the guide.")
	return nil
}

func writeConfig(cfg *config.Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// writeStarterContent creates a small sample guide so the app is usable
// straight after init.
func writeStarterContent(contentDir string) error {
	samples := map[string]string{
		"sights/old-town.md": `# Old Town Stroll

A loop through the medieval quarter: the cathedral, the oldest house in
town, and the antiquarian bookshops on the way down.

- Start at Place du Bourg-de-Four
- Climb the cathedral tower for the view
- Finish with hot chocolate on a café terrace
`,
		"sights/lakefront.md": `# Lakefront Promenade

Flowers, fountains and ferries. The water jet is visible from almost
anywhere along the quay; the best photos are from the bathing jetty.
`,
		"food/fondue.md": `# Where to Eat Fondue

Three cheese temples worth the queue. Go early or book ahead; portions
are generous, so skip lunch.
`,
	}
	for rel, body := range samples {
		path := filepath.Join(contentDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return err
		}
	}
	return nil
}
