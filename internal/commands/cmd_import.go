package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/data/stores"
	"github.com/colonyops/closet/pkg/iojson"
)

type ImportCmd struct {
	flags *Flags

	// flags
	jsonInput bool
	reader    iojson.ListReader[closet.Item]
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{flags: flags}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Import items from YAML seed files or JSON",
		UsageText: "closet import <glob>... | closet import --json [-f file]",
		Description: `Loads items into the store. Existing items with the same id are replaced.

Glob patterns support ** for recursive matches. Without arguments the
seed_files patterns from the config file are used.

With --json items are read from --file or stdin, either as one JSON array
or as JSON Lines (one item per line).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "read JSON items instead of YAML files",
				Destination: &cmd.jsonInput,
			},
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	items, err := cmd.load(c)
	if err != nil {
		return err
	}

	n, err := stores.Import(ctx, cmd.flags.Store, items)
	if err != nil {
		return err
	}

	printer{w: c.Root().Writer}.Successf("Imported %d item(s)", n)
	return nil
}

func (cmd *ImportCmd) load(c *cli.Command) ([]closet.Item, error) {
	if cmd.jsonInput {
		items, err := cmd.reader.Read(c.Root().Reader)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].ID == "" {
				items[i].ID = closet.NewID()
			}
			if err := items[i].Validate(); err != nil {
				return nil, fmt.Errorf("items[%d]: %w", i, err)
			}
		}
		return items, nil
	}

	patterns := c.Args().Slice()
	if len(patterns) == 0 {
		patterns = cmd.flags.Config.SeedFiles
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no seed files given and none configured")
	}

	return stores.LoadSeedFiles(patterns...)
}
