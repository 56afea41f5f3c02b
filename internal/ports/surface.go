package ports

import (
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

// Container is a uniquely identified render target that reveals write into.
type Container interface {
	Clear()
	// AppendRune extends the last line, starting one if the container is empty.
	AppendRune(r rune)
	// AppendBreak starts a new empty line.
	AppendBreak()
	// AppendLine adds a full line and returns its index.
	AppendLine(l domain.Line) int
	SetLine(i int, l domain.Line)
	Lines() []domain.Line
}

// Surface is everything the orchestrator can touch on screen.
type Surface interface {
	Container(id string) (Container, error)
	StartTransition(d time.Duration)
	SetActive(c domain.Channel)
	ScrollIntoView(c domain.Channel)
	SetChannelCode(code string)
	PowerOn(d time.Duration)
}
