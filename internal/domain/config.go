package domain

// Config is the runtime configuration assembled from flags, environment and the content file.
type Config struct {
	Debug       bool
	DataDir     string
	ContentPath string
	Motion      MotionConfig
}

type MotionConfig struct {
	// Scale multiplies every animation delay. 0 disables waiting entirely.
	Scale float64
	// ScrollLookahead is how many rows before a section's top the scroll
	// watcher already treats that section as current.
	ScrollLookahead int
}

// DefaultConfig provides sane defaults if flags and files are partially missing.
func DefaultConfig() Config {
	return Config{
		DataDir: ".crt",
		Motion: MotionConfig{
			Scale:           1,
			ScrollLookahead: 3,
		},
	}
}
