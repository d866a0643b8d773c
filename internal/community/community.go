// Package community provides the demo leaderboard and group challenges and
// merges the local profile into them.
package community

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ecochallenge/internal/advisor"
	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/models"
)

// AnonymousName replaces the username of anonymous profiles.
const AnonymousName = "Anonymous user"

var mockUsers = []models.CommunityUser{
	{ID: "1", Username: "EcoWarrior2024", Level: "Eco-Expert", TotalPoints: 2450, CarbonReduction: 1200, JoinedAt: "2024-01-15"},
	{ID: "2", Username: "GreenMaster", Level: "Eco-Expert", TotalPoints: 2380, CarbonReduction: 1150, JoinedAt: "2024-02-01"},
	{ID: "3", Username: "ClimateHero", Level: "Eco-Warrior", TotalPoints: 1950, CarbonReduction: 980, JoinedAt: "2024-01-20"},
	{ID: "4", Username: AnonymousName, Level: "Eco-Warrior", TotalPoints: 1820, CarbonReduction: 890, JoinedAt: "2024-02-10", IsAnonymous: true},
	{ID: "5", Username: "PlanetSaver", Level: "Eco-Conscious", TotalPoints: 1650, CarbonReduction: 750, JoinedAt: "2024-02-15"},
}

// MockLeaderboard returns a copy of the demo participants.
func MockLeaderboard() []models.CommunityUser {
	return append([]models.CommunityUser(nil), mockUsers...)
}

// GroupChallenges returns the demo group challenges.
func GroupChallenges() []models.GroupChallenge {
	users := MockLeaderboard()
	return []models.GroupChallenge{
		{
			ID:                  "1",
			Title:               "Collective transport challenge",
			Description:         "Together, let's cut 10 tonnes of CO2 from transport this month",
			Category:            models.CategoryTransport,
			TargetParticipants:  50,
			CurrentParticipants: 32,
			TargetReduction:     10000,
			CurrentReduction:    6800,
			StartDate:           "2024-03-01",
			EndDate:             "2024-03-31",
			Participants:        users[:5],
		},
		{
			ID:                  "2",
			Title:               "Vegetarian week",
			Description:         "Let's eat vegetarian for a whole week",
			Category:            models.CategoryFood,
			TargetParticipants:  30,
			CurrentParticipants: 28,
			TargetReduction:     2100,
			CurrentReduction:    1950,
			StartDate:           "2024-03-15",
			EndDate:             "2024-03-22",
			Participants:        users[:4],
		},
		{
			ID:                  "3",
			Title:               "Energy savings",
			Description:         "Let's cut our energy use by 20% for a month",
			Category:            models.CategoryEnergy,
			TargetParticipants:  40,
			CurrentParticipants: 35,
			TargetReduction:     8000,
			CurrentReduction:    7200,
			StartDate:           "2024-02-15",
			EndDate:             "2024-03-15",
			Participants:        users,
			Completed:           true,
		},
	}
}

// NewProfile creates the local community profile.
func NewProfile(username string, anonymous bool, now time.Time) (models.CommunityUser, error) {
	username = strings.TrimSpace(username)
	if anonymous {
		username = AnonymousName
	}
	if username == "" {
		return models.CommunityUser{}, fmt.Errorf("username cannot be empty unless the profile is anonymous")
	}
	return models.CommunityUser{
		ID:          uuid.NewString(),
		Username:    username,
		Level:       advisor.LevelFor(0).Name,
		JoinedAt:    now.Format(constants.TimestampFormat),
		IsAnonymous: anonymous,
	}, nil
}

// SyncProfile returns the profile with points, level and reduction derived
// from the local data. reduction is the drop between the oldest and newest
// history totals; increases count as zero.
func SyncProfile(p models.CommunityUser, points, reduction int) models.CommunityUser {
	p.TotalPoints = points
	p.Level = advisor.LevelFor(points).Name
	p.CarbonReduction = max(reduction, 0)
	return p
}

// Ranked is a leaderboard row.
type Ranked struct {
	Rank    int
	User    models.CommunityUser
	IsLocal bool
}

// Leaderboard merges the local profile, when present, into the demo users,
// sorted by points then join date.
func Leaderboard(local *models.CommunityUser) []Ranked {
	rows := make([]Ranked, 0, len(mockUsers)+1)
	for _, u := range MockLeaderboard() {
		rows = append(rows, Ranked{User: u})
	}
	if local != nil {
		rows = append(rows, Ranked{User: *local, IsLocal: true})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].User.TotalPoints != rows[j].User.TotalPoints {
			return rows[i].User.TotalPoints > rows[j].User.TotalPoints
		}
		return rows[i].User.JoinedAt < rows[j].User.JoinedAt
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// ParticipationPercent is how full the challenge is, capped at 100.
func ParticipationPercent(g models.GroupChallenge) float64 {
	return percent(g.CurrentParticipants, g.TargetParticipants)
}

// ReductionPercent is how much of the target reduction is reached, capped at
// 100.
func ReductionPercent(g models.GroupChallenge) float64 {
	return percent(g.CurrentReduction, g.TargetReduction)
}

// DaysLeft returns the days until the end date, never negative.
func DaysLeft(g models.GroupChallenge, now time.Time) int {
	end, err := time.ParseInLocation(constants.DateFormat, g.EndDate, now.Location())
	if err != nil {
		return 0
	}
	return max(0, int(math.Ceil(end.Sub(now).Hours()/24)))
}

func percent(current, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(float64(current)/float64(target)*100, 100)
}
