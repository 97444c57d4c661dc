package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adriangreen/todo-tui/internal/config"
	"github.com/adriangreen/todo-tui/internal/debuglog"
	"github.com/adriangreen/todo-tui/internal/storage"
	"github.com/adriangreen/todo-tui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo-tui",
		Short: "A keyboard-driven todo list for the terminal",
		Long: `todo-tui keeps a todo list in a CSV file and lets you add, edit, toggle
and delete tasks from an interactive terminal interface. With --lists the
tasks are grouped into named lists chosen from a sidebar.

Changes are only written when you quit and confirm the save.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	// Add flags
	cmd.Flags().StringP("file", "f", storage.DefaultPath, "CSV file holding the tasks")
	cmd.Flags().BoolP("lists", "l", false, "Group tasks into named lists")
	cmd.PersistentFlags().String("config", config.DefaultConfigPath, "Path to the JSON config file")
	cmd.PersistentFlags().Bool("clear-state", false, "Clear the TUI state before starting")
	cmd.PersistentFlags().String("debug-log", "", "Append debug output to this file")

	return cmd
}

// runTUI starts the Bubble Tea TUI application
func runTUI(cmd *cobra.Command, args []string) error {
	// Create context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for clean shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	if path, _ := cmd.Flags().GetString("debug-log"); path != "" {
		if err := debuglog.Init(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		defer debuglog.Close()
	}

	// Create config manager
	configPath, _ := cmd.Flags().GetString("config")
	configManager, err := config.NewConfigManager(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	cfg := configManager.GetConfig()
	session := resolveSession(cmd, cfg)

	// Check if --clear-state flag is set
	clearState, _ := cmd.Flags().GetBool("clear-state")
	if clearState && session.StatePath != "" {
		if err := config.ClearState(session.StatePath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to clear state file: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "TUI state cleared successfully\n")
		}
	}

	state, err := openState(session)
	if err != nil {
		return err
	}

	if session.StatePath != "" {
		uiState, err := config.LoadState(session.StatePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring saved TUI state: %v\n", err)
		} else {
			restoreUIState(state, uiState)
		}
	}

	if err := configManager.StartWatcher(ctx); err != nil {
		// Log warning but don't fail - watchers are optional
		fmt.Fprintf(os.Stderr, "Warning: failed to start config watcher: %v\n", err)
	}
	defer configManager.StopWatcher()

	// Create and run the TUI
	m := ui.NewModel(cfg, configManager, state, session.TasksPath)
	p := tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if session.StatePath != "" {
		if err := config.SaveState(session.StatePath, extractUIState(state)); err != nil {
			debuglog.Logf("failed to save TUI state: %v", err)
		}
	}

	model, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	return finish(session, state, model.Outcome())
}
