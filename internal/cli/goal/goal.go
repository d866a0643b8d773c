package goal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/equivalency"
	"github.com/julianstephens/ecochallenge/internal/goals"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/questionnaire"
	"github.com/julianstephens/ecochallenge/internal/utils"
)

func save(ctx *cli.Context, all []models.PersonalGoal) error {
	ctx.PerformAutomaticBackup()
	if err := ctx.Store.SaveGoals(all); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}

type GoalAddCmd struct {
	Title       string  `help:"Goal title. Omit to fill in the interactive form."`
	Description string  `help:"Goal description."`
	Category    string  `help:"Category to reduce (transport, energy, food, consumption, total)." default:"transport"`
	Target      float64 `help:"Target reduction in kg CO2e."`
	Date        string  `help:"Target date (YYYY-MM-DD)."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()

	var g models.PersonalGoal
	if strings.TrimSpace(c.Title) == "" {
		fm := questionnaire.NewGoalFormModel(nil, now)
		if err := questionnaire.NewGoalForm(fm).Run(); err != nil {
			return fmt.Errorf("goal form cancelled: %w", err)
		}
		created, err := fm.Goal(now)
		if err != nil {
			return err
		}
		g = created
	} else {
		category, err := models.ParseGoalCategory(c.Category)
		if err != nil {
			return err
		}
		created, err := goals.New(strings.TrimSpace(c.Title), strings.TrimSpace(c.Description), category, c.Target, c.Date, now)
		if err != nil {
			return err
		}
		g = created
	}

	all, err := ctx.Store.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	if err := save(ctx, goals.Add(all, g)); err != nil {
		return err
	}

	fmt.Printf("✓ Added goal: %s (ID: %s)\n", g.Title, cli.ShortID(g.ID))
	return nil
}

type GoalListCmd struct {
	All bool `help:"Include completed goals."`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	all, err := ctx.Store.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No goals yet. Add one with 'goal add'.")
		return nil
	}

	current, hasFootprint, err := ctx.CurrentBreakdown()
	if err != nil {
		return err
	}

	now := ctx.Now()
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	active, completed := goals.SplitByStatus(all)

	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("Active goals (%d)", len(active))))
	for _, g := range active {
		printGoal(g, current, hasFootprint, now, bar)
	}
	if !hasFootprint && len(active) > 0 {
		fmt.Println(cli.MutedStyle.Render("  Run the calculator to track progress."))
	}

	if c.All && len(completed) > 0 {
		fmt.Println()
		fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("Completed goals (%d)", len(completed))))
		for _, g := range completed {
			fmt.Printf("  ✓ %s  %s %s\n", cli.ShortID(g.ID), g.Category.Icon(), g.Title)
		}
	} else if len(completed) > 0 {
		fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("\n%d completed goal(s) hidden, use --all to show them.", len(completed))))
	}
	return nil
}

func printGoal(g models.PersonalGoal, current models.FootprintBreakdown, hasFootprint bool, now time.Time, bar progress.Model) {
	fmt.Printf("  %s  %s %s\n", cli.ShortID(g.ID), g.Category.Icon(), g.Title)
	if g.Description != "" {
		fmt.Printf("            %s\n", cli.MutedStyle.Render(g.Description))
	}

	due := g.TargetDate
	if days, err := goals.DaysRemaining(g, now); err == nil {
		label := fmt.Sprintf("%d days left", days)
		style := cli.LabelStyle
		switch {
		case days < 0:
			label = fmt.Sprintf("overdue by %d days", -days)
			style = cli.DangerStyle
		case days <= 7:
			style = cli.WarningStyle
		}
		due = fmt.Sprintf("%s (%s, %s)", g.TargetDate, utils.RelativeDate(g.TargetDate, now), style.Render(label))
	}
	fmt.Printf("            target: -%s kg by %s\n", equivalency.FormatFloat(g.TargetReduction, 0), due)

	if hasFootprint {
		if pct, err := goals.Progress(g, current); err == nil {
			fmt.Printf("            %s %.0f%%\n", bar.ViewAs(pct/100), pct)
		}
	}
}

type GoalEditCmd struct {
	ID          string   `arg:"" help:"Goal ID or ID prefix."`
	Title       *string  `help:"New title."`
	Description *string  `help:"New description."`
	Category    *string  `help:"New category."`
	Target      *float64 `help:"New target reduction in kg CO2e."`
	Date        *string  `help:"New target date (YYYY-MM-DD)."`
}

func (c *GoalEditCmd) Run(ctx *cli.Context) error {
	all, err := ctx.Store.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	g, err := goals.Find(all, c.ID)
	if err != nil {
		return err
	}

	noFlags := c.Title == nil && c.Description == nil && c.Category == nil && c.Target == nil && c.Date == nil
	if noFlags {
		fm := questionnaire.NewGoalFormModel(&g, ctx.Now())
		if err := questionnaire.NewGoalForm(fm).Run(); err != nil {
			return fmt.Errorf("goal form cancelled: %w", err)
		}
		if g, err = fm.Apply(g); err != nil {
			return err
		}
	} else {
		if c.Title != nil {
			g.Title = strings.TrimSpace(*c.Title)
		}
		if c.Description != nil {
			g.Description = strings.TrimSpace(*c.Description)
		}
		if c.Category != nil {
			category, err := models.ParseGoalCategory(*c.Category)
			if err != nil {
				return err
			}
			g.Category = category
		}
		if c.Target != nil {
			g.TargetReduction = *c.Target
		}
		if c.Date != nil {
			g.TargetDate = *c.Date
		}
		if err := g.Validate(); err != nil {
			return err
		}
	}

	updated, err := goals.Update(all, g)
	if err != nil {
		return err
	}
	if err := save(ctx, updated); err != nil {
		return err
	}
	fmt.Printf("✓ Updated goal: %s\n", g.Title)
	return nil
}

type GoalToggleCmd struct {
	ID string `arg:"" help:"Goal ID or ID prefix."`
}

func (c *GoalToggleCmd) Run(ctx *cli.Context) error {
	all, err := ctx.Store.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	g, err := goals.Find(all, c.ID)
	if err != nil {
		return err
	}
	updated, err := goals.ToggleCompletion(all, g.ID)
	if err != nil {
		return err
	}
	if err := save(ctx, updated); err != nil {
		return err
	}

	if g.Completed {
		fmt.Printf("○ Reopened goal: %s\n", g.Title)
	} else {
		fmt.Printf("✓ Completed goal: %s\n", g.Title)
	}
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID or ID prefix."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	all, err := ctx.Store.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	g, err := goals.Find(all, c.ID)
	if err != nil {
		return err
	}
	updated, err := goals.Remove(all, g.ID)
	if err != nil {
		return err
	}
	if err := save(ctx, updated); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted goal: %s\n", g.Title)
	return nil
}
