package social

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/community"
	"github.com/julianstephens/ecochallenge/internal/equivalency"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/storage"
)

// loadProfile returns the local profile or nil when none was created.
func loadProfile(ctx *cli.Context) (*models.CommunityUser, error) {
	p, err := ctx.Store.GetProfile()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &p, nil
}

type LeaderboardCmd struct {
	Limit int `help:"Number of rows to show (0 for all)." default:"10"`
}

func (c *LeaderboardCmd) Run(ctx *cli.Context) error {
	profile, err := loadProfile(ctx)
	if err != nil {
		return err
	}

	rows := community.Leaderboard(profile)
	fmt.Println(cli.HeaderStyle.Render("Community leaderboard"))
	for i, r := range rows {
		if c.Limit > 0 && i >= c.Limit && !r.IsLocal {
			continue
		}
		line := fmt.Sprintf("  %2d. %-20s %-14s %6s pts  -%s kg CO2",
			r.Rank, r.User.Username, r.User.Level,
			equivalency.FormatNumber(int64(r.User.TotalPoints)),
			equivalency.FormatNumber(int64(r.User.CarbonReduction)))
		if r.IsLocal {
			line = cli.SuccessStyle.Render(line + "  (you)")
		}
		fmt.Println(line)
	}
	if profile == nil {
		fmt.Println()
		fmt.Println(cli.MutedStyle.Render("Create a profile with 'community profile --username NAME' to join the leaderboard."))
	}
	return nil
}

type GroupsCmd struct{}

func (c *GroupsCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	for _, g := range community.GroupChallenges() {
		status := fmt.Sprintf("%d days left", community.DaysLeft(g, now))
		if g.Completed {
			status = "completed"
		}
		fmt.Printf("%s %s %s\n", g.Category.Icon(), cli.HeaderStyle.Render(g.Title), cli.MutedStyle.Render("("+status+")"))
		fmt.Printf("   %s\n", g.Description)

		part := community.ParticipationPercent(g)
		red := community.ReductionPercent(g)
		fmt.Printf("   Participants %s %d/%d (%.0f%%)\n", cli.Bar(int(part), 100, 20), g.CurrentParticipants, g.TargetParticipants, part)
		fmt.Printf("   Reduction    %s %s/%s kg (%.0f%%)\n", cli.Bar(int(red), 100, 20),
			equivalency.FormatNumber(int64(g.CurrentReduction)),
			equivalency.FormatNumber(int64(g.TargetReduction)), red)
		fmt.Println()
	}
	return nil
}

type ProfileCmd struct {
	Username  string `help:"Create the profile, or rename it."`
	Anonymous *bool  `help:"Hide your username on the leaderboard."`
}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	profile, err := loadProfile(ctx)
	if err != nil {
		return err
	}

	username := strings.TrimSpace(c.Username)
	anonymous := c.Anonymous != nil && *c.Anonymous

	switch {
	case profile == nil && username == "" && !anonymous:
		fmt.Println("No community profile yet.")
		fmt.Println(cli.MutedStyle.Render("Create one with --username NAME or --anonymous."))
		return nil
	case profile == nil:
		p, err := community.NewProfile(username, anonymous, ctx.Now())
		if err != nil {
			return err
		}
		if err := ctx.Store.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		fmt.Printf("✓ Created profile %s\n", p.Username)
	case username != "" || c.Anonymous != nil:
		if c.Anonymous != nil {
			profile.IsAnonymous = *c.Anonymous
		}
		if username != "" {
			profile.Username = username
		}
		if profile.IsAnonymous {
			profile.Username = community.AnonymousName
		} else if profile.Username == community.AnonymousName {
			return fmt.Errorf("choose a username with --username when leaving anonymous mode")
		}
		if err := ctx.Store.SaveProfile(*profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		fmt.Printf("✓ Updated profile %s\n", profile.Username)
	}

	if err := ctx.RefreshProfile(); err != nil {
		return err
	}
	p, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Username:"), p.Username)
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Level:"), p.Level)
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Points:"), equivalency.FormatNumber(int64(p.TotalPoints)))
	fmt.Printf("%s %s kg CO2\n", cli.LabelStyle.Render("Reduction:"), equivalency.FormatNumber(int64(p.CarbonReduction)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Joined:"), p.JoinedAt)
	return nil
}
