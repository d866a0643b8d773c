package footprints

import (
	"fmt"

	"github.com/julianstephens/ecochallenge/internal/advisor"
	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/goals"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *cli.Context) error {
	breakdown, ok, err := ctx.CurrentBreakdown()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No footprint calculated yet.")
		fmt.Printf("Run '%s calc' to estimate your annual footprint.\n", constants.AppName)
		return nil
	}

	printBreakdown(breakdown)
	printBenchmarks(breakdown.Total)
	printEquivalency(breakdown.Total)
	printRecommendations(ctx.GetAdvisor().Recommendations(breakdown))

	completed, err := ctx.Store.LoadCompletedChallenges()
	if err != nil {
		return fmt.Errorf("failed to load completed challenges: %w", err)
	}
	points := advisor.TotalPoints(ctx.GetAdvisor().Catalog(), advisor.CompletedSet(completed))
	level := advisor.LevelFor(points)
	fmt.Printf("%s %s %s, %d points\n", cli.HeaderStyle.Render("Level:"), level.Icon, level.Name, points)

	all, err := ctx.Store.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	active, done := goals.SplitByStatus(all)
	fmt.Printf("%s %d active, %d completed\n", cli.HeaderStyle.Render("Goals:"), len(active), len(done))

	return nil
}
