package advisor

import "github.com/julianstephens/ecochallenge/internal/models"

// Predicate decides whether a template applies to a breakdown.
type Predicate func(b models.FootprintBreakdown) bool

// RecommendationRule pairs a predicate with the recommendation it emits.
type RecommendationRule struct {
	When     Predicate
	Template models.Recommendation
}

// ChallengeRule pairs an optional gate with a catalog challenge. A nil gate
// always includes the challenge.
type ChallengeRule struct {
	When      Predicate
	Challenge models.Challenge
}

// ShareAbove matches when the category is strictly more than fraction of the
// total.
func ShareAbove(c models.Category, fraction float64) Predicate {
	return func(b models.FootprintBreakdown) bool {
		v, err := b.Value(c)
		if err != nil {
			return false
		}
		return float64(v) > float64(b.Total)*fraction
	}
}

// AmountAbove matches when the category is strictly more than kg.
func AmountAbove(c models.Category, kg int) Predicate {
	return func(b models.FootprintBreakdown) bool {
		v, err := b.Value(c)
		if err != nil {
			return false
		}
		return v > kg
	}
}

// DefaultRecommendationRules are evaluated in order; the order is the
// category priority.
var DefaultRecommendationRules = []RecommendationRule{
	{
		When: ShareAbove(models.CategoryTransport, 0.4),
		Template: models.Recommendation{
			Category:   models.CategoryTransport,
			Suggestion: "Favour public transport, cycling or walking for short trips",
			Impact:     "-500 kg CO2/year",
			Difficulty: models.DifficultyEasy,
		},
	},
	{
		When: ShareAbove(models.CategoryEnergy, 0.35),
		Template: models.Recommendation{
			Category:   models.CategoryEnergy,
			Suggestion: "Lower the thermostat by 1°C and improve your home insulation",
			Impact:     "-300 kg CO2/year",
			Difficulty: models.DifficultyMedium,
		},
	},
	{
		When: ShareAbove(models.CategoryFood, 0.3),
		Template: models.Recommendation{
			Category:   models.CategoryFood,
			Suggestion: "Cut meat down to 2-3 times a week and buy local produce",
			Impact:     "-400 kg CO2/year",
			Difficulty: models.DifficultyEasy,
		},
	},
	{
		When: ShareAbove(models.CategoryConsumption, 0.2),
		Template: models.Recommendation{
			Category:   models.CategoryConsumption,
			Suggestion: "Buy less, repair more and choose second hand",
			Impact:     "-200 kg CO2/year",
			Difficulty: models.DifficultyEasy,
		},
	},
}

// DefaultChallengeRules is the challenge catalog in display order.
var DefaultChallengeRules = []ChallengeRule{
	{
		When: AmountAbove(models.CategoryTransport, 1000),
		Challenge: models.Challenge{
			ID:          "transport-1",
			Title:       "Car-free week",
			Description: "Use only public transport, cycling or walking for 7 days",
			Category:    models.CategoryTransport,
			Difficulty:  models.DifficultyMedium,
			Impact:      "-25 kg CO2",
			Duration:    "7 days",
			Points:      150,
			Icon:        "🚊",
		},
	},
	{
		Challenge: models.Challenge{
			ID:          "transport-2",
			Title:       "Daily carpooling",
			Description: "Organise or join a carpool for your regular trips",
			Category:    models.CategoryTransport,
			Difficulty:  models.DifficultyEasy,
			Impact:      "-15 kg CO2",
			Duration:    "2 weeks",
			Points:      100,
			Icon:        "🚗",
		},
	},
	{
		When: AmountAbove(models.CategoryEnergy, 1200),
		Challenge: models.Challenge{
			ID:          "energy-1",
			Title:       "Thermostat -1°C",
			Description: "Lower your home temperature by 1°C for a month",
			Category:    models.CategoryEnergy,
			Difficulty:  models.DifficultyEasy,
			Impact:      "-30 kg CO2",
			Duration:    "30 days",
			Points:      120,
			Icon:        "🌡️",
		},
	},
	{
		Challenge: models.Challenge{
			ID:          "energy-2",
			Title:       "Standby hunt",
			Description: "Unplug every device left on standby for 2 weeks",
			Category:    models.CategoryEnergy,
			Difficulty:  models.DifficultyEasy,
			Impact:      "-8 kg CO2",
			Duration:    "14 days",
			Points:      80,
			Icon:        "🔌",
		},
	},
	{
		When: AmountAbove(models.CategoryFood, 1500),
		Challenge: models.Challenge{
			ID:          "food-1",
			Title:       "Green Monday",
			Description: "Eat vegetarian every Monday for a month",
			Category:    models.CategoryFood,
			Difficulty:  models.DifficultyEasy,
			Impact:      "-20 kg CO2",
			Duration:    "30 days",
			Points:      100,
			Icon:        "🥬",
		},
	},
	{
		Challenge: models.Challenge{
			ID:          "food-2",
			Title:       "Local and seasonal",
			Description: "Buy only local, seasonal produce for 2 weeks",
			Category:    models.CategoryFood,
			Difficulty:  models.DifficultyMedium,
			Impact:      "-12 kg CO2",
			Duration:    "14 days",
			Points:      90,
			Icon:        "🛒",
		},
	},
	{
		Challenge: models.Challenge{
			ID:          "consumption-1",
			Title:       "Zero purchase",
			Description: "Make no non-essential purchases for 2 weeks",
			Category:    models.CategoryConsumption,
			Difficulty:  models.DifficultyHard,
			Impact:      "-35 kg CO2",
			Duration:    "14 days",
			Points:      200,
			Icon:        "🛍️",
		},
	},
	{
		Challenge: models.Challenge{
			ID:          "consumption-2",
			Title:       "Repair before replacing",
			Description: "Repair 3 broken items instead of replacing them",
			Category:    models.CategoryConsumption,
			Difficulty:  models.DifficultyMedium,
			Impact:      "-18 kg CO2",
			Duration:    "30 days",
			Points:      120,
			Icon:        "🔧",
		},
	},
}
