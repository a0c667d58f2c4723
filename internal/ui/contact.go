package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/olivier-w/orbfield/internal/content"
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldMessage
	fieldCount
)

var fieldKeys = [fieldCount]string{"name", "email", "phone", "message"}
var fieldLabels = [fieldCount]string{"Name", "Email", "Phone (optional)", "Message"}

const (
	sentText   = "Thank you for your message. I'll get back to you soon."
	failedText = "Failed to send message. Please try again."
)

// contactModel is the contact form. It only takes keys while editing.
type contactModel struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	editing bool
	sending bool
	errs    *content.ValidationError
	result  string
	failed  bool
}

func newContactModel() contactModel {
	var m contactModel
	specs := [fieldCount]struct {
		placeholder string
		limit       int
	}{
		{"Your name", 50},
		{"you@example.com", 100},
		{"+1 5551234567", 15},
		{"Tell me about your project", 1000},
	}
	for i, s := range specs {
		ti := textinput.New()
		ti.Placeholder = s.placeholder
		ti.CharLimit = s.limit
		ti.Width = 48
		m.inputs[i] = ti
	}
	return m
}

func (m contactModel) form() content.ContactForm {
	return content.ContactForm{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Phone:   m.inputs[fieldPhone].Value(),
		Message: m.inputs[fieldMessage].Value(),
	}
}

func (m *contactModel) setWidth(w int) {
	for i := range m.inputs {
		m.inputs[i].Width = max(10, min(72, w-8))
	}
}

func (m *contactModel) focusField(i int) tea.Cmd {
	m.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m *contactModel) start() tea.Cmd {
	m.editing = true
	m.result = ""
	return tea.Batch(m.focusField(m.focus), textinput.Blink)
}

func (m *contactModel) stop() {
	m.editing = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *contactModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.focus = fieldName
	m.errs = nil
}

// submit validates locally and, when the form is good, sends it.
func (m *contactModel) submit(ctx context.Context, log *zap.Logger, delay time.Duration) tea.Cmd {
	form := m.form().Normalize()
	var verr *content.ValidationError
	if err := form.Validate(); errors.As(err, &verr) {
		m.errs = verr
		for i, key := range fieldKeys {
			if verr.Field(key) != "" {
				return m.focusField(i)
			}
		}
		return nil
	}
	m.errs = nil
	m.sending = true
	m.stop()
	return submitCmd(ctx, log, form, delay)
}

func (m *contactModel) sent(msg contactSentMsg) {
	m.sending = false
	if msg.err != nil {
		var verr *content.ValidationError
		if errors.As(msg.err, &verr) {
			m.errs = verr
		}
		m.result, m.failed = failedText, true
		return
	}
	m.reset()
	m.result, m.failed = msg.resp.Message+" "+sentText, false
}

func (m contactModel) update(ctx context.Context, msg tea.Msg, log *zap.Logger, delay time.Duration) (contactModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if !m.editing {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if !m.editing {
		if key.String() == "enter" && !m.sending {
			return m, m.start()
		}
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.stop()
		return m, nil
	case "tab", "down":
		return m, m.focusField(m.focus + 1)
	case "shift+tab", "up":
		return m, m.focusField(m.focus - 1)
	case "enter":
		return m, m.submit(ctx, log, delay)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m contactModel) view(st styles) string {
	var sb strings.Builder
	sb.WriteString("  " + st.title.Render("Get in Touch") + "\n")
	sb.WriteString("\n")
	for i := range m.inputs {
		label := fieldLabels[i]
		if i == m.focus && m.editing {
			sb.WriteString("  " + st.accent.Render(label) + "\n")
		} else {
			sb.WriteString("  " + st.label.Render(label) + "\n")
		}
		sb.WriteString("  " + m.inputs[i].View() + "\n")
		if m.errs != nil {
			if msg := m.errs.Field(fieldKeys[i]); msg != "" {
				sb.WriteString("  " + st.err.Render(msg) + "\n")
			}
		}
	}
	sb.WriteString("\n")
	switch {
	case m.sending:
		sb.WriteString("  " + st.muted.Render("Sending...") + "\n")
	case m.result != "" && m.failed:
		sb.WriteString("  " + st.err.Render(m.result) + "\n")
	case m.result != "":
		sb.WriteString("  " + st.ok.Render(m.result) + "\n")
	case !m.editing:
		sb.WriteString("  " + st.help.Render("enter to start typing") + "\n")
	}
	if m.editing || m.sending {
		sb.WriteString("  " + st.help.Render(formHelpText(m.sending)))
	}
	return strings.TrimRight(sb.String(), "\n")
}
