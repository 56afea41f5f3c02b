package domain

import "time"

// SkillEntry is one line of the skills diagnostic.
type SkillEntry struct {
	Name  string
	Icon  string
	Level int // 0..100
}

// SkillCategory groups entries under a header, in declared order.
type SkillCategory struct {
	Title   string
	Icon    string
	Entries []SkillEntry
}

type Project struct {
	ID      string
	Title   string
	Summary string
	Details string // markdown
	Tech    []string
	URL     string
}

// Content is the static, read-only data shown across all channels.
type Content struct {
	Owner         string
	Tagline       string
	AboutText     string
	ContactBanner string
	Projects      []Project
	Skills        []SkillCategory
}

// ContactMessage is a simulated transmission from the contact form.
type ContactMessage struct {
	ID     string
	Name   string
	Email  string
	Body   string
	SentAt time.Time
}

// LevelText buckets a skill level into the label shown next to its bar.
func LevelText(level int) string {
	switch {
	case level >= 90:
		return "EXPERT"
	case level >= 80:
		return "ADVANCED"
	case level >= 70:
		return "INTERMEDIATE"
	case level >= 60:
		return "BEGINNER"
	default:
		return "LEARNING"
	}
}
