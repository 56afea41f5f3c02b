package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

func TestUserMessage(t *testing.T) {
	_, badChannel := domain.ParseChannel("tv")

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"canceled", fmt.Errorf("wrap: %w", context.Canceled), "Signal lost"},
		{"invalid channel", badChannel, "No such channel"},
		{"content not found", &domain.OpError{Op: "content.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Content file not found"},
		{"missing target", domain.MissingTarget("reveal.about", "about-text"), "Display region missing"},
		{
			"yaml with line",
			&domain.OpError{Op: "content.load", Kind: domain.KindInvalidConfig, Path: "/x/site.yaml", Err: errors.New("yaml: line 7: did not find expected key")},
			"Invalid YAML at site.yaml line 7",
		},
		{"empty message", &domain.OpError{Op: "outbox.save", Kind: domain.KindInvalidConfig, Err: domain.ErrInvalidConfig}, "Message is empty"},
		{"outbox write", &domain.OpError{Op: "outbox.insert", Kind: domain.KindExecution, Err: domain.ErrExecution}, "Transmission failed (see logs)"},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := userMessage(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
