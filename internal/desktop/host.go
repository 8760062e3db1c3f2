// Package desktop provides a notify.Host backed by the operating system's
// notification service.
package desktop

import (
	"context"
	"runtime"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"github.com/nateberkopec/glucostatus-notify/internal/notify"
	"github.com/nateberkopec/glucostatus-notify/internal/persistence"
)

// Prompter asks the user whether notifications may be shown. Returning
// PermissionDefault means the user postponed the decision.
type Prompter func(ctx context.Context) (notify.PermissionState, error)

// Config wires external dependencies for the host.
type Config struct {
	AppName string
	Sound   bool
	Logger  zerolog.Logger
	Prompt  Prompter
}

// Host implements notify.Host and notify.Supporter.
type Host struct {
	log    zerolog.Logger
	prompt Prompter
	send   func(title, message, icon string) error

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	state     notify.PermissionState
	prompting bool
}

// New loads the stored permission decision and returns a ready host.
func New(cfg Config) (*Host, error) {
	state, err := persistence.LoadPermission()
	if err != nil {
		return nil, err
	}

	if cfg.AppName != "" {
		beeep.AppName = cfg.AppName
	}

	send := func(title, message, icon string) error {
		return beeep.Notify(title, message, icon)
	}
	if cfg.Sound {
		send = func(title, message, icon string) error {
			return beeep.Alert(title, message, icon)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Host{
		log:    cfg.Logger,
		prompt: cfg.Prompt,
		send:   send,
		ctx:    ctx,
		cancel: cancel,
		state:  state,
	}, nil
}

func (h *Host) Permission() notify.PermissionState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// RequestPermission starts a prompt in the background. A denied host is never
// re-prompted; use Reset to clear the decision.
func (h *Host) RequestPermission() {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case h.state == notify.PermissionDenied:
		h.log.Info().Msg("notifications blocked; run with -reset to be asked again")
		return
	case h.state == notify.PermissionGranted, h.prompting:
		return
	case h.prompt == nil:
		h.log.Warn().Msg("no permission prompt configured")
		return
	}

	h.prompting = true
	h.wg.Add(1)
	go h.runPrompt()
}

func (h *Host) runPrompt() {
	defer h.wg.Done()

	decision, err := h.prompt(h.ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.prompting = false

	if err != nil {
		h.log.Error().Err(err).Msg("permission prompt failed")
		return
	}
	if decision == notify.PermissionDefault {
		h.log.Debug().Msg("permission decision postponed")
		return
	}

	h.state = decision
	h.log.Info().Stringer("permission", decision).Msg("permission decided")
	if err := persistence.SavePermission(decision); err != nil {
		h.log.Error().Err(err).Msg("failed to save permission")
	}
}

// Show hands the request to the OS. Failures are logged, never returned.
func (h *Host) Show(req notify.Request) {
	if err := h.send(req.Title, req.Body, req.IconURL); err != nil {
		h.log.Warn().Err(err).Str("title", req.Title).Msg("notification failed")
		return
	}
	h.log.Debug().Str("title", req.Title).Msg("notification sent")
}

// Supported reports whether beeep has a backend for this platform.
func (h *Host) Supported() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "netbsd", "openbsd", "darwin", "windows":
		return true
	}
	return false
}

// Reset forgets the stored decision so the next request prompts again.
func (h *Host) Reset() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := persistence.ClearPermission(); err != nil {
		return err
	}
	h.state = notify.PermissionDefault
	return nil
}

// Wait blocks until any in-flight prompt has finished.
func (h *Host) Wait() {
	h.wg.Wait()
}

// Close cancels in-flight prompts and waits for them to return.
func (h *Host) Close() {
	h.cancel()
	h.wg.Wait()
}
