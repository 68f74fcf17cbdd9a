package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/core/styles"
)

const defaultShowWidth = 80

type ShowCmd struct {
	flags *Flags

	// flags
	raw bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "show",
		Usage:       "Show an item",
		UsageText:   "closet show <id> [--raw]",
		Description: "Renders the item detail card as markdown.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print the markdown source without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
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

	md := itemMarkdown(item)
	if cmd.raw {
		_, err := fmt.Fprint(c.Root().Writer, md)
		return err
	}

	out, err := renderMarkdown(md, terminalWidth())
	if err != nil {
		return fmt.Errorf("render item: %w", err)
	}
	_, err = fmt.Fprint(c.Root().Writer, out)
	return err
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultShowWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultShowWidth
	}
	return w
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// itemMarkdown builds the detail card. Field order matches the TUI detail screen.
func itemMarkdown(it closet.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", closet.DisplayOr(it.ProductName))
	b.WriteString("| Field | Value |\n|---|---|\n")

	rows := [][2]string{
		{"Brand", closet.DisplayOr(it.Brand)},
		{"Price", closet.FormatPrice(it.Price)},
		{"Size", closet.DisplayOr(it.Size)},
		{"Purchased", closet.FormatPurchase(it.Purchase)},
		{"Category", closet.DisplayOr(it.Category)},
		{"Materials", closet.Tags(it.Materials)},
		{"Colors", closet.Tags(it.Colors)},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", row[0], escapeCell(row[1]))
	}

	b.WriteString("\n## Style tags\n\n")
	if len(it.StyleTags) == 0 {
		b.WriteString(closet.Placeholder + "\n")
	} else {
		for _, tag := range it.StyleTags {
			fmt.Fprintf(&b, "- #%s\n", tag)
		}
	}

	b.WriteString("\n## Images\n\n")
	if len(it.Images) == 0 {
		b.WriteString("No image\n")
	} else {
		for i, img := range it.Images {
			fmt.Fprintf(&b, "%d. `%s`\n", i+1, img)
		}
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
