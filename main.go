package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/closet/internal/commands"
	"github.com/colonyops/closet/internal/core/config"
	"github.com/colonyops/closet/internal/core/styles"
	"github.com/colonyops/closet/internal/data/db"
	"github.com/colonyops/closet/internal/data/stores"
	"github.com/colonyops/closet/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

// openDatabase opens the SQLite database, moving a corrupt file aside and
// starting fresh when the existing one cannot be read.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	opts := db.OpenOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		BusyTimeout:  cfg.Database.BusyTimeout,
	}

	database, err := db.Open(cfg.DataDir, opts)
	if err == nil {
		return database, nil
	}
	if !stores.IsCorruptionError(err) {
		return nil, err
	}

	log.Warn().Err(err).Str("data_dir", cfg.DataDir).Msg("closet database is corrupt, recovering")
	backup, err := stores.RecoverFromCorruption(cfg.DataDir, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("recover database: %w", err)
	}
	if backup != "" {
		fmt.Fprintf(os.Stderr, "closet: unreadable database moved to %s\n", backup)
	}
	return db.Open(cfg.DataDir, opts)
}

func main() {
	ctx := context.Background()

	// A missing .env is fine.
	_ = godotenv.Load()

	var (
		logCloser func()
		database  *db.DB
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "closet",
		Usage:     "Browse and manage your wardrobe",
		UsageText: "closet [global options] command [command options]",
		Description: `Closet keeps a catalogue of the clothes you own.

Run 'closet' with no arguments to open the interactive browser.
Run 'closet import <glob>' to load items from YAML files.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CLOSET_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/closet.log)",
				Sources:     cli.EnvVars("CLOSET_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CLOSET_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("CLOSET_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/closet.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "closet.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			for _, w := range cfg.Warnings() {
				log.Warn().Str("item", w.Item).Msg(w.Message)
			}

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			// Notifications always persist to SQLite, whatever the item backend.
			database, err = openDatabase(cfg)
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}
			flags.DB = database
			flags.Notifications = stores.NewNotifyStore(database).WithLimit(cfg.TUI.HistoryLimit)

			switch cfg.Store.Backend {
			case config.BackendMemory:
				items, err := stores.LoadSeedFiles(cfg.SeedFiles...)
				if err != nil {
					return ctx, fmt.Errorf("load seed files: %w", err)
				}
				flags.Store = stores.NewMemoryItemStore(cfg.Store.Latency, items...)
				log.Debug().Int("items", len(items)).Msg("using memory store")
			default:
				flags.Store = stores.NewItemStore(database)
			}
			flags.Store = stores.WithTimeout(flags.Store, cfg.Store.Timeout)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close database connection
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewShowCmd(flags).Register(app)
	app = commands.NewRmCmd(flags).Register(app)
	app = commands.NewImportCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewNotificationsCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = commands.NewDBCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'closet --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
