package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/closet/internal/core/notify"
	"github.com/colonyops/closet/pkg/iojson"
)

type NotificationsCmd struct {
	flags *Flags

	jsonOutput bool
	clear      bool
}

// NewNotificationsCmd creates a new notifications command.
func NewNotificationsCmd(flags *Flags) *NotificationsCmd {
	return &NotificationsCmd{flags: flags}
}

// Register adds the notifications command to the application.
func (cmd *NotificationsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "notifications",
		Usage:     "Show or clear the notification history",
		UsageText: "closet notifications [--json] [--clear]",
		Description: `Prints the notifications raised in the interactive browser, newest first.

Use --clear to delete the history.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "clear",
				Usage:       "delete all stored notifications",
				Destination: &cmd.clear,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NotificationsCmd) run(ctx context.Context, c *cli.Command) error {
	store := cmd.flags.Notifications
	if store == nil {
		return fmt.Errorf("notification history is unavailable")
	}

	p := printer{w: c.Root().Writer}

	if cmd.clear {
		n, err := store.Count(ctx)
		if err != nil {
			return fmt.Errorf("count notifications: %w", err)
		}
		if err := store.Clear(ctx); err != nil {
			return fmt.Errorf("clear notifications: %w", err)
		}
		p.Successf("Cleared %d notification(s)", n)
		return nil
	}

	items, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list notifications: %w", err)
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, items)
	}

	if len(items) == 0 {
		p.Printf("No notifications yet.")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tLEVEL\tMESSAGE")
	for _, n := range items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", n.CreatedAt.Format("2006-01-02 15:04:05"), levelLabel(n.Level), n.Message)
	}
	return w.Flush()
}

func levelLabel(l notify.Level) string {
	if l == "" {
		return string(notify.LevelInfo)
	}
	return string(l)
}
