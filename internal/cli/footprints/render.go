package footprints

import (
	"fmt"

	"github.com/julianstephens/ecochallenge/internal/aggregate"
	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/equivalency"
	"github.com/julianstephens/ecochallenge/internal/footprint"
	"github.com/julianstephens/ecochallenge/internal/models"
)

const barWidth = 24

// printBreakdown prints the total, its grade and one bar per category.
func printBreakdown(b models.FootprintBreakdown) {
	perf := footprint.Grade(b.Total)
	fmt.Printf("%s %s (%s tonnes CO₂e per year)\n",
		cli.HeaderStyle.Render("Annual footprint:"),
		equivalency.FormatKg(b.Total),
		equivalency.FormatTonnes(b.Total),
	)
	style := cli.ToneStyle(perf.Tone)
	fmt.Printf("%s %s\n\n", style.Render(perf.Level+":"), perf.Message)

	shares := aggregate.ComputeShares(b)
	for _, c := range models.FootprintCategories {
		v, _ := b.Value(c)
		pct := shares.Of(c)
		fmt.Printf("  %s %-12s %s %9s  %s\n",
			c.Icon(),
			c.Label(),
			cli.ToneStyle(cli.ShareTone(pct)).Render(cli.Bar(v, b.Total, barWidth)),
			equivalency.FormatKg(v),
			cli.LabelStyle.Render(fmt.Sprintf("%.1f%%", pct)),
		)
	}
	fmt.Println()
}

func printBenchmarks(total int) {
	fmt.Println(cli.HeaderStyle.Render("Comparison"))
	scale := footprint.ScaleMax(total)
	for _, bm := range footprint.Benchmarks(total) {
		fmt.Printf("  %-18s %s %9s\n", bm.Label, cli.Bar(bm.Kg, scale, barWidth), equivalency.FormatKg(bm.Kg))
	}
	fmt.Println()
}

func printEquivalency(total int) {
	out, err := equivalency.Calculate(float64(total))
	if err != nil || out.IsEmpty {
		return
	}
	fmt.Println(cli.MutedStyle.Render(out.DisplayText))
	fmt.Println()
}

func printRecommendations(recs []models.Recommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Println(cli.HeaderStyle.Render("Recommendations"))
	for _, r := range recs {
		fmt.Printf("  %s %s\n", r.Category.Icon(), r.Suggestion)
		fmt.Printf("     %s\n", cli.LabelStyle.Render(fmt.Sprintf("impact: %s, difficulty: %s", r.Impact, r.Difficulty)))
	}
	fmt.Println()
}
