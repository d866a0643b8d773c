// Package advisor selects recommendations and challenges for a breakdown
// from ordered rule tables, and scores completed challenges.
package advisor

import "github.com/julianstephens/ecochallenge/internal/models"

// MaxRecommendations caps the number of recommendations returned.
const MaxRecommendations = 3

// Advisor evaluates a fixed set of rules. The zero value is not usable; use
// New or NewWithRules.
type Advisor struct {
	recommendations []RecommendationRule
	challenges      []ChallengeRule
}

// New returns an Advisor over the default rule tables.
func New() *Advisor {
	return NewWithRules(DefaultRecommendationRules, DefaultChallengeRules)
}

func NewWithRules(recs []RecommendationRule, challenges []ChallengeRule) *Advisor {
	return &Advisor{recommendations: recs, challenges: challenges}
}

// Recommendations returns the first MaxRecommendations matching templates,
// in rule order.
func (a *Advisor) Recommendations(b models.FootprintBreakdown) []models.Recommendation {
	out := make([]models.Recommendation, 0, MaxRecommendations)
	for _, r := range a.recommendations {
		if len(out) == MaxRecommendations {
			break
		}
		if r.When != nil && r.When(b) {
			out = append(out, r.Template)
		}
	}
	return out
}

// Challenges returns every challenge whose gate passes, in catalog order.
func (a *Advisor) Challenges(b models.FootprintBreakdown) []models.Challenge {
	out := make([]models.Challenge, 0, len(a.challenges))
	for _, r := range a.challenges {
		if r.When == nil || r.When(b) {
			out = append(out, r.Challenge)
		}
	}
	return out
}

// Catalog returns every challenge regardless of gating.
func (a *Advisor) Catalog() []models.Challenge {
	out := make([]models.Challenge, len(a.challenges))
	for i, r := range a.challenges {
		out[i] = r.Challenge
	}
	return out
}

// FilterByCategory keeps challenges of one category. An empty category keeps
// all of them.
func FilterByCategory(challenges []models.Challenge, c models.Category) []models.Challenge {
	if c == "" {
		return append([]models.Challenge(nil), challenges...)
	}
	out := make([]models.Challenge, 0, len(challenges))
	for _, ch := range challenges {
		if ch.Category == c {
			out = append(out, ch)
		}
	}
	return out
}

// Find returns the challenge with the given id.
func Find(challenges []models.Challenge, id string) (models.Challenge, bool) {
	for _, ch := range challenges {
		if ch.ID == id {
			return ch, true
		}
	}
	return models.Challenge{}, false
}
