// Package notify fires desktop notifications once the host has granted
// permission, and asks for it otherwise.
package notify

import "errors"

// IconURL is attached to every notification.
const IconURL = "https://github.com/HanSolo/glucostatusfx/raw/main/icon.png"

// ErrUnsupported reports a host without notification support.
var ErrUnsupported = errors.New("desktop notifications not available on this host")

// Request is a single notification handed to the host for display.
type Request struct {
	Title   string
	Body    string
	IconURL string
}

// Host is the notification capability supplied by the environment. The host
// owns the permission state; RequestPermission may prompt asynchronously and
// must not block the caller.
type Host interface {
	Permission() PermissionState
	RequestPermission()
	Show(Request)
}

// Supporter is implemented by hosts that can tell whether notifications work
// at all.
type Supporter interface {
	Supported() bool
}

// Notifier sends notifications through a Host.
type Notifier struct {
	host Host
}

// New returns a Notifier bound to host.
func New(host Host) *Notifier {
	return &Notifier{host: host}
}

// Notify shows a notification if permission is granted. Otherwise it asks the
// host for permission and returns; a later grant only affects future calls.
func (n *Notifier) Notify(title, message string) {
	if n.host.Permission() != PermissionGranted {
		n.host.RequestPermission()
		return
	}

	n.host.Show(Request{
		Title:   title,
		Body:    message,
		IconURL: IconURL,
	})
}

// CheckSupport is an opt-in startup guard. Hosts that do not implement
// Supporter are assumed to be capable.
func CheckSupport(host Host) error {
	if s, ok := host.(Supporter); ok && !s.Supported() {
		return ErrUnsupported
	}
	return nil
}
