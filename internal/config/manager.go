package config

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// reloadDebounce is how long the manager waits for writes to settle before
// reloading the config file.
const reloadDebounce = 300 * time.Millisecond

// ConfigManager holds the current configuration and reloads it when the
// config file changes on disk.
type ConfigManager struct {
	path       string
	config     *Config
	watcher    *Watcher
	reloadChan chan struct{}
	errorChan  chan error
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
}

// NewConfigManager loads the config at path and returns a manager for it
func NewConfigManager(path string) (*ConfigManager, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &ConfigManager{
		path:       path,
		config:     cfg,
		reloadChan: make(chan struct{}, 1),
		errorChan:  make(chan error, 1),
		done:       make(chan struct{}),
	}, nil
}

// Path returns the watched config file path.
func (cm *ConfigManager) Path() string {
	return cm.path
}

// GetConfig returns the current configuration (thread-safe)
func (cm *ConfigManager) GetConfig() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// Reload loads the configuration from disk. On failure the previous
// configuration stays in effect.
func (cm *ConfigManager) Reload() error {
	cfg, err := Load(cm.path)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	cm.mu.Lock()
	cm.config = cfg
	cm.mu.Unlock()
	return nil
}

// StartWatcher begins watching the config file for changes
func (cm *ConfigManager) StartWatcher(ctx context.Context) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.watcher != nil {
		return fmt.Errorf("watcher already started")
	}
	select {
	case <-cm.done:
		return fmt.Errorf("config manager stopped")
	default:
	}
	if cm.path == "" {
		return fmt.Errorf("no config path to watch")
	}

	watcher, err := NewWatcher(ctx, cm.path)
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := watcher.Start(reloadDebounce); err != nil {
		watcher.Stop()
		return fmt.Errorf("failed to start config watcher: %w", err)
	}

	cm.watcher = watcher
	go cm.handleConfigChanges(ctx, watcher)

	return nil
}

// handleConfigChanges reloads on every debounced change and forwards errors
func (cm *ConfigManager) handleConfigChanges(ctx context.Context, w *Watcher) {
	for {
		select {
		case <-ctx.Done():
			return

		case <-cm.done:
			return

		case _, ok := <-w.Events():
			if !ok {
				return
			}
			if err := cm.Reload(); err != nil {
				cm.sendError(err)
				continue
			}
			select {
			case cm.reloadChan <- struct{}{}:
			default:
				// Reload notification already pending
			}

		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			cm.sendError(err)
		}
	}
}

func (cm *ConfigManager) sendError(err error) {
	select {
	case cm.errorChan <- err:
	default:
	}
}

// StopWatcher stops the config file watcher if it's running and closes the
// channel returned by Done. It is safe to call more than once.
func (cm *ConfigManager) StopWatcher() error {
	cm.stopOnce.Do(func() { close(cm.done) })

	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.watcher == nil {
		return nil
	}

	err := cm.watcher.Stop()
	cm.watcher = nil
	return err
}

// ReloadEvents returns a channel that signals when config has been reloaded
func (cm *ConfigManager) ReloadEvents() <-chan struct{} {
	return cm.reloadChan
}

// Errors returns a channel carrying reload and watcher errors
func (cm *ConfigManager) Errors() <-chan error {
	return cm.errorChan
}

// Done is closed once StopWatcher has been called. Readers of ReloadEvents
// and Errors should select on it so they are released on shutdown.
func (cm *ConfigManager) Done() <-chan struct{} {
	return cm.done
}
