package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/infra/screen"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
)

const (
	glitchEvery     = 3 * time.Second
	glitchFor       = 500 * time.Millisecond
	glitchOddsOneIn = 10
)

const transmitSuccess = "// TRANSMISSION_SUCCESSFUL. //\n// MESSAGE_RECEIVED. //\n// THANK_YOU_FOR_CONTACTING. //"

// listenScreen waits for the next screen mutation. The model re-arms it
// after every screenChangedMsg.
func listenScreen(ctx context.Context, s *screen.Screen) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.Changes():
			return screenChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// cmdNavigate runs a blocking trigger adapter call off the update loop.
func cmdNavigate(source string, call func() (navigate.Outcome, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := call()
		return navDoneMsg{source: source, outcome: out, err: err}
	}
}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockMsg(t) })
}

func tickGlitch() tea.Cmd {
	return tea.Tick(glitchEvery, func(time.Time) tea.Msg { return glitchTickMsg{} })
}

// cmdTransmit simulates sending the contact form: a fixed delay, a local
// outbox record, then the typed status message.
func cmdTransmit(ctx context.Context, deps Deps, msg domain.ContactMessage) tea.Cmd {
	return func() tea.Msg {
		log := deps.Logger
		if log == nil {
			log = slog.Default()
		}
		t := deps.Renderer.Timing()

		if err := deps.Sleeper.Sleep(ctx, t.ContactSend); err != nil {
			return transmitDoneMsg{err: err}
		}

		var id string
		if deps.Outbox != nil {
			saved, err := deps.Outbox.Save(ctx, msg)
			if err != nil {
				log.Error("contact.save.failed", "err", err)
				return transmitDoneMsg{err: err}
			}
			id = saved
		}
		log.Info("contact.transmitted", "id", id, "name", msg.Name, "body_bytes", len(msg.Body))

		box, err := deps.Screen.Container(domain.TargetContactStatus)
		if err != nil {
			return transmitDoneMsg{id: id, err: err}
		}
		if err := deps.Renderer.Typewriter(ctx, box, transmitSuccess, t.ContactTypeChar); err != nil {
			return transmitDoneMsg{id: id, err: err}
		}
		return transmitDoneMsg{id: id}
	}
}

func cmdFormReset(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return formResetMsg{} })
}

func newContactMessage(name, email, body string) domain.ContactMessage {
	return domain.ContactMessage{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Body:  strings.TrimSpace(body),
	}
}
