package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mvelders/baedeker/internal/core/config"
	"github.com/mvelders/baedeker/internal/core/styles"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "baedeker config validate [options]",
				Description: "Validates the configuration file, checking themes, paths, and the content directory.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})
	return app
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	warnings := cmd.flags.Config.Warnings()

	if cmd.format == "json" {
		return cmd.outputJSON(c, err, warnings)
	}
	return cmd.outputText(err, warnings)
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, vErr error, warnings []config.ValidationWarning) error {
	out := struct {
		Valid    bool                       `json:"valid"`
		Error    string                     `json:"error,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
	}{
		Valid:    vErr == nil,
		Warnings: warnings,
	}
	if vErr != nil {
		out.Error = vErr.Error()
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	if vErr != nil {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(vErr error, warnings []config.ValidationWarning) error {
	for _, warn := range warnings {
		fmt.Println(styles.DividerStyle.Render("warning:"), warn.Category+":", warn.Message)
		if warn.Item != "" {
			fmt.Println("  item:", warn.Item)
		}
	}
	if vErr != nil {
		return fmt.Errorf("configuration is invalid: %w", vErr)
	}
	fmt.Println(styles.CommandHeaderStyle.Render("configuration is valid"))
	return nil
}
