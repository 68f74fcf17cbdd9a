package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/closet/internal/data/db"
	"github.com/colonyops/closet/pkg/iojson"
)

type DBCmd struct {
	flags *Flags

	jsonOutput bool
	steps      int
	yes        bool
}

// NewDBCmd creates the database maintenance command.
func NewDBCmd(flags *Flags) *DBCmd {
	return &DBCmd{flags: flags}
}

// Register adds the db command and its subcommands to the application.
func (cmd *DBCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "db",
		Usage: "Inspect or roll back the closet database schema",
		Commands: []*cli.Command{
			{
				Name:      "status",
				Usage:     "Show the applied and latest schema versions",
				UsageText: "closet db status [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.status,
			},
			{
				Name:      "rollback",
				Usage:     "Revert the newest schema migrations",
				UsageText: "closet db rollback [--steps N] --yes",
				Description: `Reverts the newest migrations so an older closet binary can open the
database. Rolling back drops the tables those migrations created.

Any later closet command migrates the schema forward again.`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "steps",
						Usage:       "number of migrations to revert",
						Value:       1,
						Destination: &cmd.steps,
					},
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "confirm the rollback",
						Destination: &cmd.yes,
					},
				},
				Action: cmd.rollback,
			},
		},
	})

	return app
}

type schemaStatus struct {
	Path    string `json:"path"`
	Current int    `json:"current"`
	Latest  int    `json:"latest"`
}

func (cmd *DBCmd) database() (*db.DB, error) {
	if cmd.flags.DB == nil {
		return nil, fmt.Errorf("closet database is not open")
	}
	return cmd.flags.DB, nil
}

func (cmd *DBCmd) status(ctx context.Context, c *cli.Command) error {
	database, err := cmd.database()
	if err != nil {
		return err
	}

	current, latest, err := database.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	st := schemaStatus{Path: database.Path(), Current: current, Latest: latest}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, st)
	}

	p := printer{w: c.Root().Writer}
	p.Printf("%s", st.Path)
	if current == latest {
		p.Successf("Schema version %d (up to date)", current)
	} else {
		p.Warnf("Schema version %d of %d", current, latest)
	}
	return nil
}

func (cmd *DBCmd) rollback(ctx context.Context, c *cli.Command) error {
	if cmd.steps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}
	if !cmd.yes {
		return fmt.Errorf("rollback drops closet tables; re-run with --yes to confirm")
	}

	database, err := cmd.database()
	if err != nil {
		return err
	}
	if err := db.MigrateDown(ctx, database.Conn(), cmd.steps); err != nil {
		return fmt.Errorf("roll back schema: %w", err)
	}

	current, _, err := database.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	printer{w: c.Root().Writer}.Successf("Rolled back %d migration(s), schema version is now %d", cmd.steps, current)
	return nil
}
