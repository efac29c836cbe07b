package commands

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/mvelders/baedeker/internal/guide"
	"github.com/mvelders/baedeker/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; baedeker is an interactive application")
	}

	cfg := cmd.flags.Config
	g, err := guide.Load(cfg.ContentDir, cfg.Guide.City)
	if err != nil {
		return fmt.Errorf("load guide content: %w", err)
	}
	if len(g.Activities) == 0 {
		log.Warn().Str("dir", cfg.ContentDir).Msg("no guide content found, run `baedeker init`")
	}

	m := tui.New(cfg, g, log.With().Str("component", "tui").Logger())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
