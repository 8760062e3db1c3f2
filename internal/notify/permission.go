package notify

import (
	"errors"
	"fmt"
)

// PermissionState mirrors the host's notification consent.
type PermissionState int

const (
	PermissionDefault PermissionState = iota
	PermissionGranted
	PermissionDenied
)

// ErrUnknownPermission is returned when parsing an unrecognised state.
var ErrUnknownPermission = errors.New("unknown permission state")

func (s PermissionState) String() string {
	switch s {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "default"
	}
}

// ParsePermission accepts the browser vocabulary: default, granted, denied.
func ParsePermission(value string) (PermissionState, error) {
	switch value {
	case "default", "":
		return PermissionDefault, nil
	case "granted":
		return PermissionGranted, nil
	case "denied":
		return PermissionDenied, nil
	}
	return PermissionDefault, fmt.Errorf("%w: %q", ErrUnknownPermission, value)
}

func (s PermissionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *PermissionState) UnmarshalText(text []byte) error {
	parsed, err := ParsePermission(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
