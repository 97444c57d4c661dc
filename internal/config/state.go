package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UIState is the small piece of view state restored between sessions. It is
// separate from the task file and is saved whether or not tasks are.
type UIState struct {
	ListTitle string `json:"listTitle,omitempty"`
	TaskIndex int    `json:"taskIndex"`
}

// SaveState persists the UI state to disk
func SaveState(statePath string, state *UIState) error {
	if statePath == "" {
		return fmt.Errorf("state path is empty")
	}

	dir := filepath.Dir(statePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(statePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// LoadState loads the UI state from disk. A missing file yields the zero state.
func LoadState(statePath string) (*UIState, error) {
	if statePath == "" {
		return nil, fmt.Errorf("state path is empty")
	}

	data, err := os.ReadFile(statePath)
	if os.IsNotExist(err) {
		return &UIState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state UIState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if state.TaskIndex < 0 {
		state.TaskIndex = 0
	}

	return &state, nil
}

// ClearState removes the state file. A missing file is not an error.
func ClearState(statePath string) error {
	if statePath == "" {
		return nil
	}
	if err := os.Remove(statePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
