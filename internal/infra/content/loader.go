// Package content loads the portfolio content shown on each channel, either
// from the embedded defaults or from a YAML file.
package content

import (
	_ "embed"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
)

//go:embed default.yaml
var defaultYAML []byte

const embeddedPath = "<embedded>/default.yaml"

type Loader struct {
	motion domain.MotionConfig
}

func NewLoader(base domain.MotionConfig) *Loader {
	return &Loader{motion: base}
}

var _ ports.ContentLoader = (*Loader)(nil)

// Load reads path, or the embedded defaults when path is empty.
func (l *Loader) Load(path string) (domain.Content, domain.MotionConfig, error) {
	if strings.TrimSpace(path) == "" {
		return l.parse(embeddedPath, defaultYAML)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Content{}, l.motion, &domain.OpError{
			Op:   "content.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return l.parse(path, b)
}

func (l *Loader) parse(path string, b []byte) (domain.Content, domain.MotionConfig, error) {
	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Content{}, l.motion, &domain.OpError{
			Op:   "content.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	c, err := MapContent(path, dto)
	if err != nil {
		return domain.Content{}, l.motion, err
	}
	m, err := MapMotion(path, dto.Motion, l.motion)
	if err != nil {
		return domain.Content{}, l.motion, err
	}
	return c, m, nil
}

// Default returns the embedded content. It panics if the embedded file is
// invalid, which the loader tests guard against.
func Default() domain.Content {
	c, _, err := NewLoader(domain.DefaultConfig().Motion).Load("")
	if err != nil {
		panic(err)
	}
	return c
}
