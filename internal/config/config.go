package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultConfigPath is looked up in the working directory when no --config
// flag is given.
const DefaultConfigPath = ".todo-tui.json"

// Binding names accepted in the keyBindings section of the config file.
const (
	BindingAdd     = "add"
	BindingSidebar = "sidebar"
	BindingEdit    = "edit"
	BindingDelete  = "delete"
	BindingToggle  = "toggle"
	BindingQuit    = "quit"
	BindingConfirm = "confirm"
	BindingDiscard = "discard"
)

// Config represents the TUI configuration
type Config struct {
	TasksFile   string            `json:"tasksFile"`
	Grouped     bool              `json:"grouped"`
	DefaultList string            `json:"defaultList"`
	KeyBindings map[string]string `json:"keyBindings"`
	Theme       ThemeConfig       `json:"theme"`
	StatePath   string            `json:"statePath"`
}

// ThemeConfig defines color options
type ThemeConfig struct {
	PrimaryColor string `json:"primaryColor"`
	DoneColor    string `json:"doneColor"`
	EditingColor string `json:"editingColor"`
	TextColor    string `json:"textColor"`
	SubtleColor  string `json:"subtleColor"`
	BorderColor  string `json:"borderColor"`
	ErrorColor   string `json:"errorColor"`
}

// fileConfig mirrors Config for decoding; Grouped is a pointer so an absent
// field can be told apart from an explicit false.
type fileConfig struct {
	TasksFile   string            `json:"tasksFile"`
	Grouped     *bool             `json:"grouped"`
	DefaultList string            `json:"defaultList"`
	KeyBindings map[string]string `json:"keyBindings"`
	Theme       ThemeConfig       `json:"theme"`
	StatePath   string            `json:"statePath"`
}

// Load builds the configuration from defaults and, if it exists, the JSON
// file at path.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := mergeConfigFile(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// mergeConfigFile loads a config file and merges its non-zero values into target
func mergeConfigFile(target *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var partial fileConfig
	if err := json.Unmarshal(data, &partial); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if partial.TasksFile != "" {
		target.TasksFile = partial.TasksFile
	}
	if partial.Grouped != nil {
		target.Grouped = *partial.Grouped
	}
	if partial.DefaultList != "" {
		target.DefaultList = partial.DefaultList
	}
	if partial.StatePath != "" {
		target.StatePath = partial.StatePath
	}

	for name, value := range partial.KeyBindings {
		target.KeyBindings[name] = value
	}

	mergeColor(&target.Theme.PrimaryColor, partial.Theme.PrimaryColor)
	mergeColor(&target.Theme.DoneColor, partial.Theme.DoneColor)
	mergeColor(&target.Theme.EditingColor, partial.Theme.EditingColor)
	mergeColor(&target.Theme.TextColor, partial.Theme.TextColor)
	mergeColor(&target.Theme.SubtleColor, partial.Theme.SubtleColor)
	mergeColor(&target.Theme.BorderColor, partial.Theme.BorderColor)
	mergeColor(&target.Theme.ErrorColor, partial.Theme.ErrorColor)

	return nil
}

func mergeColor(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		TasksFile:   "tasks.csv",
		Grouped:     false,
		DefaultList: "Tasks",
		KeyBindings: map[string]string{
			BindingAdd:     "a",
			BindingSidebar: "b",
			BindingEdit:    "e",
			BindingDelete:  "d",
			BindingToggle:  "enter",
			BindingQuit:    "q",
			BindingConfirm: "y",
			BindingDiscard: "n",
		},
		Theme: ThemeConfig{
			PrimaryColor: "#04B575",
			DoneColor:    "#32CD32",
			EditingColor: "#4169E1",
			TextColor:    "#FFFFFF",
			SubtleColor:  "#666666",
			BorderColor:  "#555555",
			ErrorColor:   "#EF4146",
		},
		StatePath: ".todo-tui-state.json",
	}
}
