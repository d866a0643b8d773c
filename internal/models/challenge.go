package models

// Challenge is a catalog entry. Completion is tracked separately by id.
type Challenge struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Impact      string     `json:"impact"`
	Duration    string     `json:"duration"`
	Points      int        `json:"points"`
	Icon        string     `json:"icon"`
}

// Recommendation is a suggestion produced from the category shares.
type Recommendation struct {
	Category   Category   `json:"category"`
	Suggestion string     `json:"suggestion"`
	Impact     string     `json:"impact"`
	Difficulty Difficulty `json:"difficulty"`
}
