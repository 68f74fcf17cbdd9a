package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/closet/internal/tui"
	tuinotify "github.com/colonyops/closet/internal/tui/notify"
	"github.com/colonyops/closet/internal/tui/route"
)

type TuiCmd struct {
	flags *Flags

	// flags
	item string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command.
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "item",
			Aliases:     []string{"i"},
			Usage:       "open the detail screen of this item id",
			Destination: &cmd.item,
		},
	}
}

// Run executes the TUI. Used as the default action when no subcommand is provided.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	start := route.List
	if cmd.item != "" {
		start = route.Detail(cmd.item)
	}

	var watcher *tui.StoreWatcher
	if cmd.flags.DB != nil {
		w, err := tui.NewStoreWatcher(cmd.flags.DB.Path(), log.Logger)
		if err != nil {
			log.Warn().Err(err).Msg("cannot watch closet database, list will not refresh")
		} else {
			watcher = w
			defer func() { _ = w.Close() }()
		}
	}

	m := tui.New(tui.Options{
		Store:    cmd.flags.Store,
		Bus:      tuinotify.NewBus(cmd.flags.Notifications),
		Start:    start,
		ToastTTL: cmd.flags.Config.TUI.ToastTTL,
		Logger:   log.Logger,
		Watcher:  watcher,
	})

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
