package tui

import (
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
)

type screenChangedMsg struct{}

type navDoneMsg struct {
	source  string
	outcome navigate.Outcome
	err     error
}

type clockMsg time.Time

type glitchTickMsg struct{}

type transmitDoneMsg struct {
	id  string
	err error
}

type formResetMsg struct{}
