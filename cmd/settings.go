package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-calendar/cmd/config"
	"github.com/mattsolo1/grove-calendar/internal/tui/settingspanel"
	"github.com/mattsolo1/grove-calendar/pkg/caldav"
)

// NewSettingsCmd creates the `gcal settings` command.
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Open the interactive settings panel",
		Long: `Open the settings panel for calendar preferences and source management.
Every change persists immediately; there is no save step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("settings panel requires an interactive terminal")
			}

			store, err := config.OpenStore()
			if err != nil {
				return err
			}

			model := settingspanel.New(settingspanel.Options{
				Store:       store,
				Discoverer:  &caldav.Client{},
				Directories: config.VaultDirectories(),
				Headings:    config.DailyNoteHeadings(),
			})
			p := tea.NewProgram(model, tea.WithAltScreen())

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running settings panel: %w", err)
			}
			return nil
		},
	}
	return cmd
}
