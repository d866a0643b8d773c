package models

type ContentType string

const (
	ContentArticle     ContentType = "article"
	ContentVideo       ContentType = "video"
	ContentInfographic ContentType = "infographic"
	ContentTip         ContentType = "tip"
)

type ContentLevel string

const (
	LevelBeginner     ContentLevel = "beginner"
	LevelIntermediate ContentLevel = "intermediate"
	LevelAdvanced     ContentLevel = "advanced"
)

// EducationalContent is a static article shown in the learn section.
type EducationalContent struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Type        ContentType  `json:"type"`
	Content     string       `json:"content"`   // markdown
	ReadTime    int          `json:"read_time"` // minutes
	Level       ContentLevel `json:"level"`
	Tags        []string     `json:"tags"`
}
