package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akasprzok/strand/internal/linechart"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case fetchResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.warnings = msg.warnings
			m.state = stateError
			return m, nil
		}
		m.warnings = msg.warnings
		m.setData(msg.sets)
		m.reveal.Appear(time.Now())
		return m, frameTick()

	case frameMsg:
		if m.state != stateReady {
			return m, nil
		}
		now := time.Time(msg)
		if now.IsZero() {
			// initial appear, scheduled from Init
			m.reveal.Appear(time.Now())
			return m, frameTick()
		}
		if m.reveal.Done(now) {
			return m, nil
		}
		return m, frameTick()

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "r": // replay the reveal from hidden
		m.reveal = linechart.NewReveal(m.anim)
		m.reveal.Appear(time.Now())
		return m, frameTick()

	case "d": // play the disappear transition
		m.reveal.Disappear(time.Now())
		return m, frameTick()

	case "s": // show again without resetting
		m.reveal.Appear(time.Now())
		return m, frameTick()

	case "a": // toggle animation on/off
		m.anim.Disabled = !m.anim.Disabled
		visible := m.reveal.Visible()
		m.reveal = linechart.NewReveal(m.anim)
		if visible {
			m.reveal.Appear(time.Now())
		}
		return m, frameTick()
	}
	return m, nil
}
