package content

import (
	"fmt"
	"strings"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/placeholder"
)

func MapContent(path string, y YAMLFile) (domain.Content, error) {
	if strings.TrimSpace(y.Owner) == "" {
		return domain.Content{}, invalidField(path, "owner", "owner is required")
	}

	c := domain.Content{
		Owner:         strings.TrimSpace(y.Owner),
		Tagline:       strings.TrimSpace(y.Tagline),
		AboutText:     strings.TrimRight(y.About, "\n"),
		ContactBanner: strings.TrimSpace(y.ContactBanner),
		Projects:      make([]domain.Project, 0, len(y.Projects)),
		Skills:        make([]domain.SkillCategory, 0, len(y.Skills)),
	}

	seen := map[string]bool{}
	for i, p := range y.Projects {
		field := fmt.Sprintf("projects[%d]", i)
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return domain.Content{}, invalidField(path, field+".id", "id is required")
		}
		if seen[id] {
			return domain.Content{}, invalidField(path, field+".id", fmt.Sprintf("duplicate id %q", id))
		}
		seen[id] = true
		if strings.TrimSpace(p.Title) == "" {
			return domain.Content{}, invalidField(path, field+".title", "title is required")
		}

		c.Projects = append(c.Projects, domain.Project{
			ID:      id,
			Title:   strings.TrimSpace(p.Title),
			Summary: strings.TrimSpace(p.Summary),
			Details: strings.TrimSpace(p.Details),
			Tech:    p.Tech,
			URL:     strings.TrimSpace(p.URL),
		})
	}

	for i, cat := range y.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		if strings.TrimSpace(cat.Title) == "" {
			return domain.Content{}, invalidField(path, field+".title", "title is required")
		}

		mapped := domain.SkillCategory{
			Title:   strings.ToUpper(strings.TrimSpace(cat.Title)),
			Icon:    cat.Icon,
			Entries: make([]domain.SkillEntry, 0, len(cat.Entries)),
		}
		for j, e := range cat.Entries {
			ef := fmt.Sprintf("%s.entries[%d]", field, j)
			if strings.TrimSpace(e.Name) == "" {
				return domain.Content{}, invalidField(path, ef+".name", "name is required")
			}
			if e.Level == nil {
				return domain.Content{}, invalidField(path, ef+".level", "level is required")
			}
			if *e.Level < 0 || *e.Level > 100 {
				return domain.Content{}, invalidField(path, ef+".level", fmt.Sprintf("level %d outside 0..100", *e.Level))
			}
			mapped.Entries = append(mapped.Entries, domain.SkillEntry{
				Name:  strings.TrimSpace(e.Name),
				Icon:  e.Icon,
				Level: *e.Level,
			})
		}
		c.Skills = append(c.Skills, mapped)
	}

	return expandText(path, c)
}

type textField struct {
	name string
	dst  *string
}

// expandText resolves {{owner}}-style placeholders in the free-text fields.
func expandText(path string, c domain.Content) (domain.Content, error) {
	vars := placeholder.Vars(c)
	fields := []textField{
		{"tagline", &c.Tagline},
		{"about", &c.AboutText},
		{"contact_banner", &c.ContactBanner},
	}
	for i := range c.Projects {
		fields = append(fields, textField{fmt.Sprintf("projects[%d].details", i), &c.Projects[i].Details})
	}

	for _, f := range fields {
		out, err := placeholder.Expand(*f.dst, vars)
		if err != nil {
			return domain.Content{}, invalidField(path, f.name, err.Error())
		}
		*f.dst = out
	}
	return c, nil
}

// MapMotion applies the file's motion block on top of defaults.
func MapMotion(path string, y YAMLMotion, base domain.MotionConfig) (domain.MotionConfig, error) {
	out := base
	if y.Scale != nil {
		if *y.Scale < 0 {
			return base, invalidField(path, "motion.scale", "scale must be >= 0")
		}
		out.Scale = *y.Scale
	}
	if y.ScrollLookahead != nil {
		if *y.ScrollLookahead < 0 {
			return base, invalidField(path, "motion.scroll_lookahead", "lookahead must be >= 0")
		}
		out.ScrollLookahead = *y.ScrollLookahead
	}
	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "content.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
