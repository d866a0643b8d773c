package history

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/ecochallenge/internal/aggregate"
	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/equivalency"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/utils"
)

// Insert stores entry in date order, newest first, and refreshes the
// community profile. An entry sharing a date with existing ones goes in
// front of them.
func Insert(ctx *cli.Context, entry models.HistoricalEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	ctx.PerformAutomaticBackup()

	idx := len(history)
	for i, e := range history {
		if e.Date <= entry.Date {
			idx = i
			break
		}
	}
	out := make([]models.HistoricalEntry, 0, len(history)+1)
	out = append(out, history[:idx]...)
	out = append(out, entry)
	out = append(out, history[idx:]...)

	if err := ctx.Store.SaveHistory(out); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return ctx.RefreshProfile()
}

type HistoryAddCmd struct {
	Date        string `help:"Entry date (YYYY-MM-DD). Defaults to today."`
	FromCurrent bool   `help:"Record the current calculator result."`
	Transport   int    `help:"Transport emissions in kg CO2e."`
	Energy      int    `help:"Energy emissions in kg CO2e."`
	Food        int    `help:"Food emissions in kg CO2e."`
	Consumption int    `help:"Consumption emissions in kg CO2e."`
	Note        string `help:"Optional note."`
}

func (c *HistoryAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today(ctx.Now())
	}
	if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", date)
	}

	var data models.FootprintBreakdown
	if c.FromCurrent {
		b, ok, err := ctx.CurrentBreakdown()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no current footprint, run the calculator first")
		}
		data = b
	} else {
		for name, v := range map[string]int{"transport": c.Transport, "energy": c.Energy, "food": c.Food, "consumption": c.Consumption} {
			if v < 0 {
				return fmt.Errorf("%s cannot be negative: %d", name, v)
			}
		}
		data = models.FootprintBreakdown{
			Transport:   c.Transport,
			Energy:      c.Energy,
			Food:        c.Food,
			Consumption: c.Consumption,
			Total:       c.Transport + c.Energy + c.Food + c.Consumption,
		}
	}

	entry := models.HistoricalEntry{
		ID:    uuid.NewString(),
		Date:  date,
		Data:  data,
		Notes: strings.TrimSpace(c.Note),
	}
	if err := Insert(ctx, entry); err != nil {
		return err
	}

	fmt.Printf("✓ Recorded %s on %s (ID: %s)\n", equivalency.FormatKg(data.Total), date, cli.ShortID(entry.ID))
	return nil
}

type HistoryListCmd struct {
	Period string `help:"Window to show (3m, 6m, 1y, all). Defaults to the configured period."`
}

func (c *HistoryListCmd) Run(ctx *cli.Context) error {
	period, err := ctx.ResolvePeriod(c.Period)
	if err != nil {
		return err
	}
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	now := ctx.Now()
	filtered := aggregate.FilterByPeriod(history, period, now)
	if len(filtered) == 0 {
		fmt.Printf("No history for the %s.\n", period.Label())
		return nil
	}

	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("History (%s, %d entries)", period.Label(), len(filtered))))
	for i, e := range filtered {
		delta := ""
		if i+1 < len(filtered) {
			d := e.Data.Total - filtered[i+1].Data.Total
			switch {
			case d < 0:
				delta = cli.SuccessStyle.Render(fmt.Sprintf("▼ %s", equivalency.FormatKg(-d)))
			case d > 0:
				delta = cli.DangerStyle.Render(fmt.Sprintf("▲ %s", equivalency.FormatKg(d)))
			}
		}
		fmt.Printf("  %s  %s  %-16s %10s  %s\n",
			cli.ShortID(e.ID),
			e.Date,
			cli.LabelStyle.Render(utils.RelativeDate(e.Date, now)),
			equivalency.FormatKg(e.Data.Total),
			delta,
		)
		if e.Notes != "" {
			fmt.Printf("            %s\n", cli.MutedStyle.Render(e.Notes))
		}
	}
	return nil
}

type HistoryTrendCmd struct {
	Period string `help:"Window to compare (3m, 6m, 1y, all). Defaults to the configured period."`
}

func (c *HistoryTrendCmd) Run(ctx *cli.Context) error {
	period, err := ctx.ResolvePeriod(c.Period)
	if err != nil {
		return err
	}
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	trend, ok := aggregate.ComputeTrend(aggregate.FilterByPeriod(history, period, ctx.Now()))
	if !ok {
		fmt.Printf("At least two entries in the %s are needed for a trend.\n", period.Label())
		return nil
	}

	fmt.Printf("From %s (%s) to %s (%s)\n",
		trend.Oldest.Date, equivalency.FormatKg(trend.Oldest.Data.Total),
		trend.Latest.Date, equivalency.FormatKg(trend.Latest.Data.Total),
	)
	change := fmt.Sprintf("%+d kg (%+.1f%%)", trend.AbsoluteChange, trend.PercentChange)
	if trend.IsImprovement {
		fmt.Printf("%s %s\n", cli.SuccessStyle.Render("Improving:"), change)
	} else {
		fmt.Printf("%s %s\n", cli.DangerStyle.Render("Not improving:"), change)
	}
	return nil
}

type HistoryAveragesCmd struct {
	Period string `help:"Window to average (3m, 6m, 1y, all). Defaults to the configured period."`
}

func (c *HistoryAveragesCmd) Run(ctx *cli.Context) error {
	period, err := ctx.ResolvePeriod(c.Period)
	if err != nil {
		return err
	}
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	filtered := aggregate.FilterByPeriod(history, period, ctx.Now())
	avg, ok := aggregate.ComputeAverages(filtered)
	if !ok {
		fmt.Printf("No history for the %s.\n", period.Label())
		return nil
	}

	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("Averages over the %s (%d entries)", period.Label(), len(filtered))))
	for _, cat := range models.FootprintCategories {
		v, _ := avg.Value(cat)
		fmt.Printf("  %s %-12s %10s\n", cat.Icon(), cat.Label(), equivalency.FormatKg(v))
	}
	fmt.Printf("  %-15s %10s\n", "Total", equivalency.FormatKg(avg.Total))
	return nil
}

type HistoryDeleteCmd struct {
	ID string `arg:"" help:"Entry ID or unique ID prefix."`
}

func (c *HistoryDeleteCmd) Run(ctx *cli.Context) error {
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	idx, err := findEntry(history, c.ID)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	removed := history[idx]
	history = append(history[:idx:idx], history[idx+1:]...)
	if err := ctx.Store.SaveHistory(history); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	if err := ctx.RefreshProfile(); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted history entry from %s\n", removed.Date)
	return nil
}

// findEntry matches an exact id first, then a unique prefix.
func findEntry(history []models.HistoricalEntry, id string) (int, error) {
	for i, e := range history {
		if e.ID == id {
			return i, nil
		}
	}

	idx := -1
	for i, e := range history {
		if strings.HasPrefix(e.ID, id) {
			if idx != -1 {
				return -1, fmt.Errorf("ID prefix %q is ambiguous", id)
			}
			idx = i
		}
	}
	if idx == -1 {
		return -1, fmt.Errorf("history entry %q not found", id)
	}
	return idx, nil
}
