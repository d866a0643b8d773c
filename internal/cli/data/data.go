package data

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/constants"
	apperrors "github.com/julianstephens/ecochallenge/internal/errors"
	"github.com/julianstephens/ecochallenge/internal/export"
	"github.com/julianstephens/ecochallenge/internal/validation"
)

type ExportCmd struct {
	Path string `arg:"" help:"Output file (.json, .yaml or .yml)."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	b, err := export.Collect(ctx.Store, ctx.Now())
	if err != nil {
		return err
	}
	if err := export.WriteFile(c.Path, b); err != nil {
		return err
	}

	fmt.Printf("✓ Exported %d history entries, %d goals and %d completed challenges to %s\n",
		len(b.History), len(b.Goals), len(b.CompletedChallenges), c.Path)
	return nil
}

type ImportCmd struct {
	Path string `arg:"" help:"File written by export (.json, .yaml or .yml)."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	b, err := export.ReadFile(c.Path)
	if err != nil {
		return err
	}
	catalog := ctx.GetAdvisor().Catalog()
	if _, err := export.Check(b, catalog); err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will replace your history, goals and completed challenges.")
		fmt.Printf("Import %d history entries and %d goals from %s? [y/N]: ", len(b.History), len(b.Goals), c.Path)
		response, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	report, err := export.Apply(ctx.Store, b, catalog)
	if err != nil {
		return apperrors.WithHint(err, fmt.Sprintf("a snapshot was taken before the import, restore it with '%s backup restore'", constants.AppName))
	}
	if err := ctx.RefreshProfile(); err != nil {
		return err
	}

	fmt.Printf("✓ Imported %d history entries, %d goals and %d completed challenges\n",
		len(b.History), len(b.Goals), len(b.CompletedChallenges))
	if n := report.Count(validation.SeverityWarning); n > 0 {
		fmt.Printf("⚠ %s\n", report.FormatReport())
	}
	return nil
}
