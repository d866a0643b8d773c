package learn

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/education"
	"github.com/julianstephens/ecochallenge/internal/models"
)

var bodyStyle = lipgloss.NewStyle().Width(80).PaddingLeft(2)

var (
	contentTypes  = []models.ContentType{models.ContentArticle, models.ContentVideo, models.ContentInfographic, models.ContentTip}
	contentLevels = []models.ContentLevel{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}
)

func parseType(s string) (models.ContentType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range contentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid content type %q (expected article, video, infographic or tip)", s)
}

func parseLevel(s string) (models.ContentLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range contentLevels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("invalid level %q (expected beginner, intermediate or advanced)", s)
}

func printList(items []models.EducationalContent) {
	if len(items) == 0 {
		fmt.Println("No articles found.")
		return
	}
	for _, c := range items {
		fmt.Printf("  %s %-44s %s\n", c.Category.Icon(), c.Title, cli.LabelStyle.Render(c.ID))
		fmt.Printf("      %s\n", c.Description)
		fmt.Printf("      %s\n", cli.MutedStyle.Render(fmt.Sprintf("%s · %s · %d min read", c.Type, c.Level, c.ReadTime)))
	}
}

type LearnListCmd struct {
	Category string `help:"Filter by category (transport, energy, food, consumption, general)."`
	Type     string `help:"Filter by type (article, video, infographic, tip)."`
	Level    string `help:"Filter by level (beginner, intermediate, advanced)."`
}

func (c *LearnListCmd) Run(ctx *cli.Context) error {
	var f education.Filter
	var err error
	if c.Category != "" {
		if f.Category, err = models.ParseContentCategory(c.Category); err != nil {
			return err
		}
	}
	if c.Type != "" {
		if f.Type, err = parseType(c.Type); err != nil {
			return err
		}
	}
	if c.Level != "" {
		if f.Level, err = parseLevel(c.Level); err != nil {
			return err
		}
	}
	printList(education.Apply(f))
	return nil
}

type LearnShowCmd struct {
	ID string `arg:"" help:"Article ID (for example energy-1)."`
}

func (c *LearnShowCmd) Run(ctx *cli.Context) error {
	article, err := education.Find(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.HeaderStyle.Render(article.Category.Icon() + " " + article.Title))
	fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("%s · %s · %d min read", article.Type, article.Level, article.ReadTime)))
	fmt.Println()
	fmt.Println(bodyStyle.Render(strings.TrimSpace(article.Content)))
	if len(article.Tags) > 0 {
		fmt.Println()
		fmt.Println(cli.MutedStyle.Render("Tags: " + strings.Join(article.Tags, ", ")))
	}
	return nil
}

type LearnSearchCmd struct {
	Query string `arg:"" help:"Text to find in titles, descriptions and tags."`
}

func (c *LearnSearchCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(c.Query) == "" {
		return fmt.Errorf("search query cannot be empty")
	}
	printList(education.Search(c.Query))
	return nil
}
