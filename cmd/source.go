package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-calendar/cmd/config"
	"github.com/mattsolo1/grove-calendar/internal/tui/sourceadd"
	"github.com/mattsolo1/grove-calendar/pkg/caldav"
	"github.com/mattsolo1/grove-calendar/pkg/calendar"
)

// NewSourceCmd creates the `gcal source` command group.
func NewSourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "Manage calendar sources",
	}
	cmd.AddCommand(newSourceAddCmd())
	cmd.AddCommand(newSourceListCmd())
	return cmd
}

func newSourceAddCmd() *cobra.Command {
	var prefillURL string

	cmd := &cobra.Command{
		Use:   "add <type>",
		Short: "Add a calendar source interactively",
		Long: `Add a calendar source of the given type (local, dailynote, icloud, caldav, ical).

A caldav source runs server discovery on submit and imports every calendar
collection found on the account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := calendar.SourceType(args[0])
			known := false
			for _, t := range calendar.SourceTypes {
				if t == typ {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown source type %q", args[0])
			}

			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("source editor requires an interactive terminal")
			}

			store, err := config.OpenStore()
			if err != nil {
				return err
			}

			seed := calendar.DefaultSource(typ)
			if typ == calendar.SourceICal && prefillURL != "" {
				seed.URL = prefillURL
				if info, err := caldav.ProbeICS(cmd.Context(), http.DefaultClient, prefillURL); err != nil {
					config.Logger().Warnf("could not probe %s: %v", prefillURL, err)
				} else {
					if info.Name != "" {
						seed.Name = info.Name
					}
					if info.Color != "" {
						seed.Color = info.Color
					}
				}
			}

			used := make(map[string]bool)
			for _, dir := range store.Settings().UsedLocalDirectories() {
				used[dir] = true
			}
			var free []string
			for _, dir := range config.VaultDirectories() {
				if !used[dir] {
					free = append(free, dir)
				}
			}

			draft := calendar.NewSourceDraft(seed, free, config.DailyNoteHeadings())
			model := sourceadd.New(sourceadd.Options{
				Draft:      draft,
				Discoverer: &caldav.Client{},
				Submit: func(_ context.Context, src calendar.Source) error {
					return store.AddSource(src)
				},
				Locale: store.Settings().Locale,
			})

			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("error running source editor: %w", err)
			}
			if m, ok := final.(sourceadd.Model); ok && m.Err != nil {
				return m.Err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefillURL, "url", "", "Prefill the url field; for ical sources the feed is probed for name and color")
	return cmd
}

func newSourceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured calendar sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.OpenStore()
			if err != nil {
				return err
			}

			cfg := store.Settings()
			if len(cfg.CalendarSources) == 0 {
				fmt.Println("No calendar sources configured. Run `gcal settings` to add one.")
				return nil
			}

			for i, src := range cfg.CalendarSources {
				marker := " "
				if i == cfg.DefaultCalendar {
					marker = "*"
				}
				name := src.Name
				if name == "" {
					switch src.Type {
					case calendar.SourceLocal:
						name = src.Directory
					case calendar.SourceDailyNote:
						name = src.Heading
					default:
						name = src.URL
					}
				}
				fmt.Printf("%s %-10s %-30s %s\n", marker, src.Type, name, src.Color)
			}
			return nil
		},
	}
}
