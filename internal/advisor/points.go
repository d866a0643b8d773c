package advisor

import "github.com/julianstephens/ecochallenge/internal/models"

// Level is the rank earned from challenge points.
type Level struct {
	Name      string
	Icon      string
	MinPoints int
}

// Levels are ordered from highest to lowest threshold.
var Levels = []Level{
	{Name: "Eco-Expert", Icon: "🏆", MinPoints: 1000},
	{Name: "Eco-Warrior", Icon: "🥉", MinPoints: 500},
	{Name: "Eco-Conscious", Icon: "🌱", MinPoints: 200},
	{Name: "Beginner", Icon: "🌱", MinPoints: 0},
}

func LevelFor(points int) Level {
	for _, l := range Levels {
		if points >= l.MinPoints {
			return l
		}
	}
	return Levels[len(Levels)-1]
}

// NextLevel returns the next rank above points, or false at the top.
func NextLevel(points int) (Level, bool) {
	for i := len(Levels) - 1; i >= 0; i-- {
		if Levels[i].MinPoints > points {
			return Levels[i], true
		}
	}
	return Level{}, false
}

// CompletedSet indexes completed challenge ids.
func CompletedSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// TotalPoints sums the points of the listed challenges that are completed.
func TotalPoints(challenges []models.Challenge, completed map[string]bool) int {
	total := 0
	for _, ch := range challenges {
		if completed[ch.ID] {
			total += ch.Points
		}
	}
	return total
}

// ToggleCompleted returns a new id list with id added or removed.
func ToggleCompleted(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
