package notify

import (
	"errors"
	"testing"
)

type fakeHost struct {
	state     PermissionState
	requests  int
	shown     []Request
	supported bool
}

func (h *fakeHost) Permission() PermissionState { return h.state }
func (h *fakeHost) RequestPermission()          { h.requests++ }
func (h *fakeHost) Show(req Request)            { h.shown = append(h.shown, req) }
func (h *fakeHost) Supported() bool             { return h.supported }

func TestNotifyGrantedShowsNotification(t *testing.T) {
	host := &fakeHost{state: PermissionGranted}

	New(host).Notify("T", "M")

	if len(host.shown) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(host.shown))
	}
	want := Request{Title: "T", Body: "M", IconURL: IconURL}
	if host.shown[0] != want {
		t.Errorf("expected %+v, got %+v", want, host.shown[0])
	}
	if host.requests != 0 {
		t.Errorf("expected no permission requests, got %d", host.requests)
	}
}

func TestNotifyWithoutPermissionRequestsIt(t *testing.T) {
	for _, state := range []PermissionState{PermissionDefault, PermissionDenied} {
		host := &fakeHost{state: state}

		New(host).Notify("T", "M")

		if host.requests != 1 {
			t.Errorf("%s: expected 1 permission request, got %d", state, host.requests)
		}
		if len(host.shown) != 0 {
			t.Errorf("%s: expected no notifications, got %d", state, len(host.shown))
		}
	}
}

func TestNotifyDoesNotDeduplicate(t *testing.T) {
	host := &fakeHost{state: PermissionGranted}
	n := New(host)

	n.Notify("T", "M")
	n.Notify("T", "M")

	if len(host.shown) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(host.shown))
	}
}

func TestNotifyPassesStringsThrough(t *testing.T) {
	host := &fakeHost{state: PermissionGranted}

	New(host).Notify("", "  <b>raw</b>\n")

	if host.shown[0].Title != "" || host.shown[0].Body != "  <b>raw</b>\n" {
		t.Errorf("expected strings untouched, got %+v", host.shown[0])
	}
}

func TestGrantOnlyAffectsLaterCalls(t *testing.T) {
	host := &fakeHost{state: PermissionDefault}
	n := New(host)

	n.Notify("first", "")
	host.state = PermissionGranted
	n.Notify("second", "")

	if len(host.shown) != 1 || host.shown[0].Title != "second" {
		t.Fatalf("expected only the second call to show, got %+v", host.shown)
	}
}

func TestCheckSupport(t *testing.T) {
	if err := CheckSupport(&fakeHost{supported: true}); err != nil {
		t.Errorf("expected supported host to pass, got %v", err)
	}
	if err := CheckSupport(&fakeHost{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestCheckSupportWithoutSupporter(t *testing.T) {
	var host Host = struct{ Host }{&fakeHost{}}
	if err := CheckSupport(host); err != nil {
		t.Errorf("expected hosts without Supporter to pass, got %v", err)
	}
}

func TestParsePermission(t *testing.T) {
	cases := map[string]PermissionState{
		"default": PermissionDefault,
		"":        PermissionDefault,
		"granted": PermissionGranted,
		"denied":  PermissionDenied,
	}
	for in, want := range cases {
		got, err := ParsePermission(in)
		if err != nil {
			t.Fatalf("ParsePermission(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePermission(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParsePermission("maybe"); !errors.Is(err, ErrUnknownPermission) {
		t.Errorf("expected ErrUnknownPermission, got %v", err)
	}
}
