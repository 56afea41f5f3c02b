package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldEmail
	fieldBody
	fieldCount
)

type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	body    textarea.Model
	spin    spinner.Model
	focus   int
	active  bool
	sending bool
}

func newContactForm() contactForm {
	name := textinput.New()
	name.Placeholder = "callsign"
	name.Prompt = "NAME  > "
	name.CharLimit = 80

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "EMAIL > "
	email.CharLimit = 120

	body := textarea.New()
	body.Placeholder = "type your transmission…"
	body.ShowLineNumbers = false
	body.SetHeight(4)
	body.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return contactForm{name: name, email: email, body: body, spin: sp}
}

func (f *contactForm) setWidth(w int) {
	if w < 20 {
		w = 20
	}
	f.name.Width = w - 10
	f.email.Width = w - 10
	f.body.SetWidth(w)
}

func (f *contactForm) open() tea.Cmd {
	f.active = true
	return f.focusField(fieldName)
}

func (f *contactForm) close() {
	f.active = false
	f.name.Blur()
	f.email.Blur()
	f.body.Blur()
}

func (f *contactForm) cycle() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *contactForm) focusField(i int) tea.Cmd {
	f.focus = i
	f.name.Blur()
	f.email.Blur()
	f.body.Blur()
	switch i {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	default:
		return f.body.Focus()
	}
}

func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	default:
		f.body, cmd = f.body.Update(msg)
	}
	return cmd
}

func (f *contactForm) empty() bool {
	return strings.TrimSpace(f.body.Value()) == ""
}

func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.body.Reset()
	f.sending = false
}

func (f contactForm) view(t Theme) string {
	var b strings.Builder
	b.WriteString(f.name.View())
	b.WriteString("\n")
	b.WriteString(f.email.View())
	b.WriteString("\n")
	b.WriteString(f.body.View())
	b.WriteString("\n")
	switch {
	case f.sending:
		b.WriteString(t.Readout.Render(f.spin.View() + " TRANSMITTING…"))
	case f.active:
		b.WriteString(t.Help.Render("tab next field • ctrl+s transmit • esc leave"))
	default:
		b.WriteString(t.Help.Render("tab to compose"))
	}
	return b.String()
}
