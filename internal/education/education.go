// Package education serves the static article catalog.
package education

import (
	"fmt"
	"strings"

	"github.com/julianstephens/ecochallenge/internal/models"
)

// All returns a copy of the catalog.
func All() []models.EducationalContent {
	return append([]models.EducationalContent(nil), catalog...)
}

// Filter keeps articles matching every non-empty criterion.
type Filter struct {
	Category models.Category
	Type     models.ContentType
	Level    models.ContentLevel
	Query    string
}

// Apply returns the catalog entries matching f. The query matches the title,
// description or any tag, case-insensitively.
func Apply(f Filter) []models.EducationalContent {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	var out []models.EducationalContent
	for _, c := range catalog {
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Type != "" && c.Type != f.Type {
			continue
		}
		if f.Level != "" && c.Level != f.Level {
			continue
		}
		if q != "" && !matches(c, q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Search is shorthand for Apply with only a query.
func Search(query string) []models.EducationalContent {
	return Apply(Filter{Query: query})
}

// Find returns the article with the given id.
func Find(id string) (models.EducationalContent, error) {
	for _, c := range catalog {
		if c.ID == id {
			return c, nil
		}
	}
	return models.EducationalContent{}, fmt.Errorf("article %q not found", id)
}

func matches(c models.EducationalContent, q string) bool {
	if strings.Contains(strings.ToLower(c.Title), q) || strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
