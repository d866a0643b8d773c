package challenge

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/julianstephens/ecochallenge/internal/advisor"
	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/models"
)

type ChallengeListCmd struct {
	All      bool   `help:"Show the whole catalog instead of the challenges suggested for your footprint."`
	Category string `help:"Only show one footprint category."`
}

func (c *ChallengeListCmd) Run(ctx *cli.Context) error {
	adv := ctx.GetAdvisor()

	list := adv.Catalog()
	if !c.All {
		breakdown, ok, err := ctx.CurrentBreakdown()
		if err != nil {
			return err
		}
		if ok {
			list = adv.Challenges(breakdown)
		} else {
			fmt.Println(cli.MutedStyle.Render("No footprint yet, showing the full catalog."))
		}
	}

	if c.Category != "" {
		category, err := models.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		list = advisor.FilterByCategory(list, category)
	}

	completed, err := ctx.Store.LoadCompletedChallenges()
	if err != nil {
		return fmt.Errorf("failed to load completed challenges: %w", err)
	}
	done := advisor.CompletedSet(completed)

	if len(list) == 0 {
		fmt.Println("No challenges match.")
		return nil
	}
	for _, ch := range list {
		mark := "○"
		if done[ch.ID] {
			mark = cli.SuccessStyle.Render("✓")
		}
		fmt.Printf("  %s %s %-26s %s\n", mark, ch.Icon, ch.Title, cli.LabelStyle.Render(ch.ID))
		fmt.Printf("      %s\n", ch.Description)
		fmt.Printf("      %s\n", cli.MutedStyle.Render(fmt.Sprintf("%s · %s · %s · %d pts", ch.Difficulty, ch.Duration, ch.Impact, ch.Points)))
	}
	return nil
}

type ChallengeToggleCmd struct {
	ID string `arg:"" help:"Challenge ID (for example food-1)."`
}

func (c *ChallengeToggleCmd) Run(ctx *cli.Context) error {
	ch, ok := advisor.Find(ctx.GetAdvisor().Catalog(), c.ID)
	if !ok {
		return fmt.Errorf("challenge %q not found", c.ID)
	}

	completed, err := ctx.Store.LoadCompletedChallenges()
	if err != nil {
		return fmt.Errorf("failed to load completed challenges: %w", err)
	}
	wasDone := advisor.CompletedSet(completed)[ch.ID]

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.SaveCompletedChallenges(advisor.ToggleCompleted(completed, ch.ID)); err != nil {
		return fmt.Errorf("failed to save completed challenges: %w", err)
	}
	if err := ctx.RefreshProfile(); err != nil {
		return err
	}

	if wasDone {
		fmt.Printf("○ Unmarked: %s (-%d pts)\n", ch.Title, ch.Points)
	} else {
		fmt.Printf("✓ Completed: %s (+%d pts)\n", ch.Title, ch.Points)
	}
	return nil
}

type ChallengePointsCmd struct{}

func (c *ChallengePointsCmd) Run(ctx *cli.Context) error {
	catalog := ctx.GetAdvisor().Catalog()
	completed, err := ctx.Store.LoadCompletedChallenges()
	if err != nil {
		return fmt.Errorf("failed to load completed challenges: %w", err)
	}
	done := advisor.CompletedSet(completed)

	points := advisor.TotalPoints(catalog, done)
	level := advisor.LevelFor(points)
	count := 0
	for _, ch := range catalog {
		if done[ch.ID] {
			count++
		}
	}

	fmt.Printf("%s %s %s\n", cli.HeaderStyle.Render("Level:"), level.Icon, level.Name)
	fmt.Printf("%s %d (%d of %d challenges completed)\n", cli.HeaderStyle.Render("Points:"), points, count, len(catalog))

	next, ok := advisor.NextLevel(points)
	if !ok {
		fmt.Println("You reached the highest level!")
		return nil
	}
	span := float64(next.MinPoints - level.MinPoints)
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	fmt.Printf("%s %d points to %s %s\n", bar.ViewAs(float64(points-level.MinPoints)/span), next.MinPoints-points, next.Icon, next.Name)
	return nil
}
