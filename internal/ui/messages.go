package ui

import (
	"github.com/adriangreen/todo-tui/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfigReloadedMsg is sent when the config file has been reloaded from disk
type ConfigReloadedMsg struct{}

// WatcherErrorMsg is sent when the config watcher or a reload fails
type WatcherErrorMsg struct {
	Err error
}

// WaitForConfigReload returns a command that waits for config to be reloaded
// and sends a ConfigReloadedMsg when that happens
func WaitForConfigReload(manager *config.ConfigManager) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-manager.ReloadEvents():
			return ConfigReloadedMsg{}
		case <-manager.Done():
			return nil
		}
	}
}

// WaitForConfigError returns a command that waits for the next watcher error
func WaitForConfigError(manager *config.ConfigManager) tea.Cmd {
	return func() tea.Msg {
		select {
		case err := <-manager.Errors():
			return WatcherErrorMsg{Err: err}
		case <-manager.Done():
			return nil
		}
	}
}
