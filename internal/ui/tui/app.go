package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/trigger"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
)

const (
	navbarRow  = 1
	chromeRows = 4 // header, navbar, toast, help

	frameEvery = 80 * time.Millisecond
)

type frameMsg struct{}

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger
	keys  keyMap
	help  help.Model

	ctx    context.Context
	cancel context.CancelFunc

	click    trigger.Click
	keyboard trigger.Keyboard
	scroll   *trigger.Scroll

	vp       viewport.Model
	ready    bool
	width    int
	height   int
	sections []trigger.Section

	scrollSeq uint64
	animating bool

	selected int
	expanded bool
	md       *markdown

	form  contactForm
	now   time.Time
	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	defer m.cancel()

	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	ctx, cancel := context.WithCancel(context.Background())

	return model{
		theme:    DefaultTheme(),
		deps:     deps,
		log:      log,
		keys:     defaultKeyMap(),
		help:     help.New(),
		ctx:      ctx,
		cancel:   cancel,
		click:    trigger.NewClick(deps.Orchestrator),
		keyboard: trigger.NewKeyboard(deps.Orchestrator),
		scroll:   trigger.NewScroll(deps.Orchestrator, deps.Motion.ScrollLookahead),
		md:       &markdown{},
		form:     newContactForm(),
		now:      time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	m.deps.Orchestrator.Boot(m.deps.Renderer.Timing().PowerOn)
	m.log.Info("tui.start", "channel", string(m.deps.Orchestrator.Current()))
	return tea.Batch(
		listenScreen(m.ctx, m.deps.Screen),
		tickClock(),
		tickGlitch(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, 1)
			m.vp.MouseWheelEnabled = true
			m.ready = true
		}
		m.vp.Width = msg.Width
		m.help.Width = msg.Width
		m.resize()
		m.form.setWidth(msg.Width - 4)
		m.refresh()
		return m, nil

	case screenChangedMsg:
		m.refresh()
		st := m.deps.Screen.State()
		if st.ScrollSeq != m.scrollSeq {
			m.scrollSeq = st.ScrollSeq
			m.scroll.Programmatic(st.ScrollTo)
			m.vp.SetYOffset(topOf(m.sections, st.ScrollTo))
		}
		cmds := []tea.Cmd{listenScreen(m.ctx, m.deps.Screen)}
		if (st.Static || st.PoweringOn || st.Glitching) && !m.animating {
			m.animating = true
			cmds = append(cmds, tea.Tick(frameEvery, func(time.Time) tea.Msg { return frameMsg{} }))
		}
		return m, tea.Batch(cmds...)

	case frameMsg:
		m.refresh()
		st := m.deps.Screen.State()
		if st.Static || st.PoweringOn || st.Glitching {
			return m, tea.Tick(frameEvery, func(time.Time) tea.Msg { return frameMsg{} })
		}
		m.animating = false
		return m, nil

	case clockMsg:
		m.now = time.Time(msg)
		return m, tickClock()

	case glitchTickMsg:
		if m.deps.Orchestrator.Current() == domain.ChannelHero && !m.deps.Orchestrator.Busy() &&
			m.deps.Rand.IntN(glitchOddsOneIn) == 0 {
			m.deps.Screen.Glitch(glitchFor)
		}
		return m, tickGlitch()

	case navDoneMsg:
		m.log.Debug("tui.nav", "source", msg.source, "outcome", msg.outcome.String())
		if msg.err != nil && msg.outcome != navigate.Interrupted {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case transmitDoneMsg:
		m.form.sending = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = ""
		m.form.close()
		return m, cmdFormReset(m.deps.Renderer.Timing().ContactReset)

	case formResetMsg:
		m.form.reset()
		if box, err := m.deps.Screen.Container(domain.TargetContactStatus); err == nil {
			box.Clear()
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.form.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.form.spin, cmd = m.form.spin.Update(msg)
		m.refresh()
		return m, cmd

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.form.active {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.toast = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Jump):
		ctx, kb, k := m.ctx, m.keyboard, msg.String()
		return m, cmdNavigate("keyboard", func() (navigate.Outcome, error) {
			return kb.Handle(ctx, k)
		})

	case key.Matches(msg, m.keys.ScrollUp):
		return m.scrollBy(-1)
	case key.Matches(msg, m.keys.ScrollDown):
		return m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollBy(-m.vp.Height)
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollBy(m.vp.Height)

	case key.Matches(msg, m.keys.PrevProject):
		m.selectProject(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextProject):
		m.selectProject(1)
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if m.deps.Orchestrator.Current() != domain.ChannelProjects {
			return m, nil
		}
		m.expanded = !m.expanded
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Compose):
		if m.deps.Orchestrator.Current() != domain.ChannelContact {
			return m, nil
		}
		cmd := m.form.open()
		m.refresh()
		return m, cmd

	case key.Matches(msg, m.keys.Reset):
		m.deps.Orchestrator.Reset()
		m.toast = "Reveal memory cleared"
		m.refresh()
		return m, nil
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Leave):
		m.form.close()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Compose):
		cmd := m.form.cycle()
		m.refresh()
		return m, cmd

	case key.Matches(msg, m.keys.Send):
		if m.form.sending {
			return m, nil
		}
		if m.form.empty() {
			m.toast = "Message is empty"
			return m, nil
		}
		m.form.sending = true
		cm := newContactMessage(m.form.name.Value(), m.form.email.Value(), m.form.body.Value())
		m.refresh()
		return m, tea.Batch(cmdTransmit(m.ctx, m.deps, cm), m.form.spin.Tick)
	}

	if m.form.sending {
		return m, nil
	}
	cmd := m.form.update(msg)
	m.refresh()
	return m, cmd
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == navbarRow {
		_, spans := renderNavbar(m.theme, m.deps.Screen.State().Active)
		id, ok := hitNav(spans, msg.X)
		if !ok {
			return m, nil
		}
		ctx, click := m.ctx, m.click
		return m, cmdNavigate("click", func() (navigate.Outcome, error) {
			return click.Handle(ctx, id)
		})
	}

	before := m.vp.YOffset
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	if m.vp.YOffset == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.observeScroll())
}

func (m model) scrollBy(n int) (tea.Model, tea.Cmd) {
	before := m.vp.YOffset
	m.vp.SetYOffset(m.vp.YOffset + n)
	if m.vp.YOffset == before {
		return m, nil
	}
	return m, m.observeScroll()
}

// observeScroll hands the new offset to the scroll adapter and issues a
// request when it reports a section change.
func (m model) observeScroll() tea.Cmd {
	pending := m.scroll.Pending
	if m.vp.AtBottom() {
		pending = m.scroll.PendingAtEnd
	}
	c, ok := pending(m.sections, m.vp.YOffset)
	if !ok {
		return nil
	}
	ctx, orch, sc := m.ctx, m.deps.Orchestrator, m.scroll
	return cmdNavigate("scroll", func() (navigate.Outcome, error) {
		out, err := orch.RequestChannel(ctx, c)
		sc.Settle(c, out)
		return out, err
	})
}

func (m *model) selectProject(delta int) {
	n := len(m.deps.Content.Projects)
	if n == 0 {
		return
	}
	m.selected = (m.selected + delta + n) % n
	m.expanded = false
	m.refresh()
}

func (m *model) resize() {
	if !m.ready {
		return
	}
	h := m.height - chromeRows - (lipgloss.Height(m.helpView()) - 1)
	if h < 1 {
		h = 1
	}
	m.vp.Height = h
}

// refresh re-renders the scrolling body from the current screen state.
func (m *model) refresh() {
	if !m.ready {
		return
	}
	md := m.md
	body, sections := layout(page{
		theme:    m.theme,
		width:    m.vp.Width,
		content:  m.deps.Content,
		state:    m.deps.Screen.State(),
		lines:    m.deps.Screen.Lines,
		selected: m.selected,
		expanded: m.expanded,
		details: func(p domain.Project, w int) string {
			return md.render(p.ID, p.Details, w)
		},
		contact: m.form.view(m.theme),
	})
	m.sections = sections
	m.vp.SetContent(body)
}

func (m model) helpView() string {
	if m.form.active {
		return m.help.ShortHelpView(m.keys.formKeys())
	}
	return m.help.View(m.keys)
}

func (m model) header() string {
	st := m.deps.Screen.State()
	left := m.theme.Title.Render(m.deps.Content.Owner)
	code := m.theme.Readout.Render("CH " + st.Code)
	clock := m.theme.Subtitle.Render(m.now.Format("15:04:05"))
	status := ""
	switch {
	case st.Static:
		status = m.theme.Static.Render(" ▒▒ STATIC ▒▒")
	case m.deps.Orchestrator.Busy():
		status = m.theme.Static.Render(" tuning…")
	}

	right := code + "  " + clock
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(status) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + status + strings.Repeat(" ", gap) + right
}

func (m model) View() string {
	if !m.ready {
		return "warming up…"
	}

	nav, _ := renderNavbar(m.theme, m.deps.Screen.State().Active)

	body := m.vp.View()
	if m.deps.Screen.State().Static {
		body = m.theme.Static.Render(body)
	}

	toast := m.theme.Toast.Render(clampString(m.toast, m.width))
	if m.deps.Debug {
		toast += m.theme.Help.Render(fmt.Sprintf("  y=%d busy=%t", m.vp.YOffset, m.deps.Orchestrator.Busy()))
	}

	return m.header() + "\n" + nav + "\n" + body + "\n" + toast + "\n" + m.helpView()
}
