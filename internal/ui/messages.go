package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/olivier-w/orbfield/internal/config"
	"github.com/olivier-w/orbfield/internal/content"
)

// ConfigMsg hands a reloaded configuration to a running program. Cell size
// and window settings only apply on the next start.
type ConfigMsg struct {
	Config *config.Config
}

type frameMsg time.Time
type typeTickMsg time.Time
type contactSentMsg struct {
	resp content.Response
	err  error
}

const typeInterval = 90 * time.Millisecond

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func typeTickCmd() tea.Cmd {
	return tea.Tick(typeInterval, func(t time.Time) tea.Msg {
		return typeTickMsg(t)
	})
}

func submitCmd(ctx context.Context, log *zap.Logger, form content.ContactForm, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		resp, err := content.Submit(ctx, log, form, delay)
		return contactSentMsg{resp: resp, err: err}
	}
}
