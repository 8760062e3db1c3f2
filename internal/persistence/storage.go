package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nateberkopec/glucostatus-notify/internal/notify"
)

type permissionData struct {
	Version   int                    `json:"version"`
	State     notify.PermissionState `json:"state"`
	DecidedAt time.Time              `json:"decided_at"`
	SavedAt   time.Time              `json:"saved_at"`
}

const stateVersion = 1

func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	xdgData := os.Getenv("XDG_DATA_HOME")
	if xdgData == "" {
		xdgData = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(xdgData, "glucostatus-notify")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dir, nil
}

func statePath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "permission.json"), nil
}

// SavePermission records the user's decision for later runs.
func SavePermission(state notify.PermissionState) error {
	path, err := statePath()
	if err != nil {
		return err
	}

	now := time.Now()
	doc := permissionData{
		Version:   stateVersion,
		State:     state,
		DecidedAt: now,
		SavedAt:   now,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal permission: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// LoadPermission returns PermissionDefault when nothing has been decided yet.
func LoadPermission() (notify.PermissionState, error) {
	path, err := statePath()
	if err != nil {
		return notify.PermissionDefault, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return notify.PermissionDefault, nil
		}
		return notify.PermissionDefault, fmt.Errorf("failed to read permission file: %w", err)
	}

	var doc permissionData
	if err := json.Unmarshal(data, &doc); err != nil {
		return notify.PermissionDefault, fmt.Errorf("failed to unmarshal permission: %w", err)
	}

	if doc.Version != stateVersion {
		return notify.PermissionDefault, fmt.Errorf("unsupported permission version: %d", doc.Version)
	}

	return doc.State, nil
}

// ClearPermission forgets any stored decision.
func ClearPermission() error {
	path, err := statePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove permission file: %w", err)
	}
	return nil
}
