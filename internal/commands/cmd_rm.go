package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/closet/internal/core/closet"
)

type RmCmd struct {
	flags *Flags

	// flags
	yes bool

	// interactive reports whether a confirmation prompt can be shown.
	interactive func() bool
	// confirm asks the user before deleting.
	confirm func(item closet.Item) (bool, error)
}

// NewRmCmd creates a new rm command
func NewRmCmd(flags *Flags) *RmCmd {
	return &RmCmd{
		flags:       flags,
		interactive: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		confirm:     confirmDelete,
	}
}

// Register adds the rm command to the application
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "rm",
		Usage:       "Delete an item",
		UsageText:   "closet rm <id> [--yes]",
		Description: "Deletes an item after confirmation. The prompt is skipped with --yes or when stdin is not a terminal.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("item id is required")
	}

	item, err := cmd.flags.Store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, closet.ErrNotFound) {
			return fmt.Errorf("item %q not found", id)
		}
		return fmt.Errorf("find item: %w", err)
	}

	p := printer{w: c.Root().Writer}

	if !cmd.yes && cmd.interactive() {
		ok, err := cmd.confirm(item)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			p.Warnf("Kept %s", closet.DisplayOr(item.ProductName))
			return nil
		}
	}

	if err := cmd.flags.Store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	p.Successf("Deleted %s", closet.DisplayOr(item.ProductName))
	return nil
}

func confirmDelete(item closet.Item) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", closet.DisplayOr(item.ProductName))).
				Description(item.ID).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&ok),
		),
	).Run()
	return ok, err
}
