package content

type YAMLFile struct {
	Owner         string         `yaml:"owner"`
	Tagline       string         `yaml:"tagline"`
	About         string         `yaml:"about"`
	ContactBanner string         `yaml:"contact_banner"`
	Projects      []YAMLProject  `yaml:"projects"`
	Skills        []YAMLCategory `yaml:"skills"`
	Motion        YAMLMotion     `yaml:"motion"`
}

type YAMLProject struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Details string   `yaml:"details"`
	Tech    []string `yaml:"tech"`
	URL     string   `yaml:"url"`
}

type YAMLCategory struct {
	Title   string      `yaml:"title"`
	Icon    string      `yaml:"icon"`
	Entries []YAMLSkill `yaml:"entries"`
}

type YAMLSkill struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Level *int   `yaml:"level"`
}

type YAMLMotion struct {
	Scale           *float64 `yaml:"scale"`
	ScrollLookahead *int     `yaml:"scroll_lookahead"`
}
