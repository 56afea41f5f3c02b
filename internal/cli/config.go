package cli

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

const (
	envContent = "CRT_CONTENT"
	envDataDir = "CRT_DATA_DIR"
	envDebug   = "CRT_DEBUG"
)

type options struct {
	debug   bool
	content string
	fast    bool
	dataDir string
}

func (o *options) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.BoolVar(&o.debug, "debug", false, "enable verbose logging to <data-dir>/logs/crt.log")
	f.StringVar(&o.content, "content", "", "portfolio content YAML (defaults to the embedded content)")
	f.BoolVar(&o.fast, "fast", false, "skip every animation delay")
	f.StringVar(&o.dataDir, "data-dir", "", "directory for logs and the outbox (default .crt)")
}

// loadDotEnv reads .env from the working directory if there is one. Variables
// already present in the environment win.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return &domain.OpError{Op: "cli.dotenv", Kind: domain.KindInvalidConfig, Path: path, Err: err}
}

// resolveConfig layers flags over environment over defaults. A flag only wins
// when it was set explicitly.
func resolveConfig(cmd *cobra.Command, o options) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	flags := cmd.Flags()

	if v, ok := os.LookupEnv(envContent); ok {
		cfg.ContentPath = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(envDataDir); ok && strings.TrimSpace(v) != "" {
		cfg.DataDir = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(envDebug); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, &domain.OpError{Op: "cli.config", Kind: domain.KindInvalidConfig, Path: envDebug, Err: err}
		}
		cfg.Debug = b
	}

	if flags.Changed("content") {
		cfg.ContentPath = o.content
	}
	if flags.Changed("data-dir") && o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if o.fast {
		cfg.Motion.Scale = 0
	}
	return cfg, nil
}
