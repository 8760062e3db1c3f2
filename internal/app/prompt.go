package app

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nateberkopec/glucostatus-notify/internal/notify"
)

// PromptConfig wires the prompt text.
type PromptConfig struct {
	AppName string
}

// PromptModel implements the Bubble Tea program that asks for notification
// permission.
type PromptModel struct {
	appName  string
	keys     keyMap
	width    int
	decision notify.PermissionState
	done     bool
}

// NewPrompt creates a permission prompt model.
func NewPrompt(cfg PromptConfig) *PromptModel {
	appName := cfg.AppName
	if appName == "" {
		appName = "GlucoStatus"
	}
	return &PromptModel{
		appName: appName,
		keys:    defaultKeyMap(),
	}
}

// Init satisfies the tea.Model interface.
func (m *PromptModel) Init() tea.Cmd {
	return nil
}

// Update records the user's answer and quits.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *PromptModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Allow):
		m.decision = notify.PermissionGranted
	case key.Matches(msg, m.keys.Block):
		m.decision = notify.PermissionDenied
	case key.Matches(msg, m.keys.Later):
		m.decision = notify.PermissionDefault
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

// View renders the prompt.
func (m *PromptModel) View() string {
	return renderPrompt(m)
}

// Decision is PermissionDefault until the user allows or blocks.
func (m *PromptModel) Decision() notify.PermissionState {
	return m.decision
}

// Done reports whether the user has answered.
func (m *PromptModel) Done() bool {
	return m.done
}

// Prompt runs the permission prompt on the terminal. Its signature matches
// desktop.Prompter.
func Prompt(ctx context.Context, cfg PromptConfig, opts ...tea.ProgramOption) (notify.PermissionState, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(NewPrompt(cfg), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return notify.PermissionDefault, ctx.Err()
		}
		return notify.PermissionDefault, err
	}

	model, ok := final.(*PromptModel)
	if !ok {
		return notify.PermissionDefault, nil
	}
	return model.Decision(), nil
}
