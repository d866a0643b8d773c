package models

// CommunityUser is a leaderboard participant. The local user's profile uses
// the same shape.
type CommunityUser struct {
	ID              string `json:"id" yaml:"id"`
	Username        string `json:"username" yaml:"username"`
	Level           string `json:"level" yaml:"level"`
	TotalPoints     int    `json:"total_points" yaml:"total_points"`
	CarbonReduction int    `json:"carbon_reduction" yaml:"carbon_reduction"` // kg CO2
	JoinedAt        string `json:"joined_at" yaml:"joined_at"`
	IsAnonymous     bool   `json:"is_anonymous" yaml:"is_anonymous"`
}

type GroupChallenge struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Category            Category        `json:"category"`
	TargetParticipants  int             `json:"target_participants"`
	CurrentParticipants int             `json:"current_participants"`
	TargetReduction     int             `json:"target_reduction"`
	CurrentReduction    int             `json:"current_reduction"`
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	Participants        []CommunityUser `json:"participants"`
	Completed           bool            `json:"completed"`
}
