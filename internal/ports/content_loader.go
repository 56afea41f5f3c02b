package ports

import "github.com/pranay0703/pranay0703.github.io/internal/domain"

// ContentLoader loads portfolio content from a source (embedded defaults or a file).
type ContentLoader interface {
	Load(path string) (domain.Content, domain.MotionConfig, error)
}
