package domain

// LineStyle tells the painter how a rendered line should look.
type LineStyle int

const (
	StylePlain LineStyle = iota
	StyleGlitch
	StyleHighlight
	StyleBanner
	StyleHeader
	StyleBar
	StyleStatus
)

// Line is one row of rendered output inside a container.
type Line struct {
	Text  string
	Style LineStyle
}

// Fixed container ids the reveals and orchestrator write into.
const (
	TargetAboutText     = "about-text"
	TargetProjectsIndex = "projects-index"
	TargetSkillsLog     = "skills-log"
	TargetContactStatus = "transmission-status"
)
