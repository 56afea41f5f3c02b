package trigger

import (
	"context"
	"unicode/utf8"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
)

// Keyboard maps arrow keys to prev/next and digits 1-5 to absolute channels.
// Both terminal key names ("left") and browser names ("ArrowLeft") are accepted.
type Keyboard struct {
	nav Navigator
}

func NewKeyboard(nav Navigator) Keyboard { return Keyboard{nav: nav} }

type move int

const (
	moveNone move = iota
	movePrev
	moveNext
	moveAbsolute
)

func classify(key string) (move, domain.Channel) {
	switch key {
	case "left", "up", "ArrowLeft", "ArrowUp":
		return movePrev, ""
	case "right", "down", "ArrowRight", "ArrowDown":
		return moveNext, ""
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		if c, ok := domain.ChannelFromDigit(r); ok {
			return moveAbsolute, c
		}
	}
	return moveNone, ""
}

// Bound reports whether key is a navigation key at all.
func (Keyboard) Bound(key string) bool {
	m, _ := classify(key)
	return m != moveNone
}

// Target resolves key against the given current channel.
func (Keyboard) Target(key string, current domain.Channel) (domain.Channel, bool) {
	m, abs := classify(key)
	switch m {
	case movePrev:
		return current.Prev(), true
	case moveNext:
		return current.Next(), true
	case moveAbsolute:
		return abs, true
	default:
		return "", false
	}
}

// Handle ignores every key while a switch is in flight.
func (k Keyboard) Handle(ctx context.Context, key string) (navigate.Outcome, error) {
	if k.nav.Busy() {
		return navigate.DroppedBusy, nil
	}
	target, ok := k.Target(key, k.nav.Current())
	if !ok {
		return navigate.Invalid, nil
	}
	return k.nav.RequestChannel(ctx, target)
}
