// Package placeholder expands {{name}} references in content text.
package placeholder

import (
	"fmt"
	"strings"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

// Expand replaces {{name}} placeholders with vars values.
// It returns an error if a variable is unknown or a placeholder is malformed.
func Expand(input string, vars map[string]string) (string, error) {
	if !strings.Contains(input, "{{") {
		return input, nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid("unclosed placeholder")
		}

		name := strings.TrimSpace(rest[:end])
		if name == "" {
			return "", invalid("empty placeholder")
		}

		value, ok := vars[name]
		if !ok {
			return "", invalid(fmt.Sprintf("unknown placeholder %q", name))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// Vars is the placeholder set content text can reference.
func Vars(c domain.Content) map[string]string {
	return map[string]string{
		"owner":    c.Owner,
		"tagline":  c.Tagline,
		"projects": fmt.Sprint(len(c.Projects)),
		"skills":   fmt.Sprint(len(c.Skills)),
	}
}

func invalid(msg string) error {
	return &domain.OpError{
		Op:   "placeholder.expand",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%w: %s", domain.ErrInvalidConfig, msg),
	}
}
