package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List all items",
		UsageText: "closet ls [--json]",
		Description: `Displays a table of all items, newest first.

Use --json to print one JSON document per item.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	items, err := cmd.flags.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, it := range items {
			if err := iojson.WriteWith(out, c.Root().ErrWriter, it); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	if len(items) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "No items found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tPRODUCT\tBRAND\tCATEGORY\tSIZE\tPRICE")
	for _, it := range items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID,
			closet.DisplayOr(it.ProductName),
			closet.DisplayOr(it.Brand),
			closet.DisplayOr(it.Category),
			closet.DisplayOr(it.Size),
			closet.FormatPrice(it.Price),
		)
	}

	return w.Flush()
}
