package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-calendar/cmd/config"
	"github.com/mattsolo1/grove-calendar/internal/tui/eventedit"
	"github.com/mattsolo1/grove-calendar/pkg/calendar"
	"github.com/mattsolo1/grove-calendar/pkg/frontmatter"
	"github.com/mattsolo1/grove-calendar/pkg/index"
)

// NewEventCmd creates the `gcal event` command group.
func NewEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Create and edit calendar events",
	}
	cmd.AddCommand(newEventNewCmd())
	cmd.AddCommand(newEventEditCmd())
	return cmd
}

func requireTTY() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("event editor requires an interactive terminal")
	}
	return nil
}

func newEventNewCmd() *cobra.Command {
	var fromFile string
	var notePath string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an event in the editor",
		Long: `Open the event editor with a fresh draft.

Without --path the normalized event is printed to stdout on save. With
--path the event is written as a note with yaml frontmatter and recorded
in the event index.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTTY(); err != nil {
				return err
			}

			store, err := config.OpenStore()
			if err != nil {
				return err
			}
			cfg := store.Settings()

			options := cfg.CalendarOptions()
			if len(options) == 0 {
				return fmt.Errorf("no calendars configured; run `gcal settings` to add one")
			}
			defaultIdx := cfg.DefaultCalendar
			if defaultIdx < 0 || defaultIdx >= len(options) {
				defaultIdx = 0
			}

			var initial *calendar.Event
			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("read seed file: %w", err)
				}
				var ev calendar.Event
				if err := yaml.Unmarshal(data, &ev); err != nil {
					return fmt.Errorf("parse seed file: %w", err)
				}
				initial = &ev
			}

			idx, err := config.OpenIndex()
			if err != nil {
				return err
			}
			defer idx.Close()

			id := index.NewID()
			submit := func(_ context.Context, ev calendar.Event, calIdx int) error {
				if notePath == "" {
					data, err := yaml.Marshal(ev)
					if err != nil {
						return err
					}
					fmt.Print(string(data))
					return nil
				}
				if err := frontmatter.WriteFile(notePath, ev, ""); err != nil {
					return fmt.Errorf("write event note: %w", err)
				}
				return idx.Put(index.Entry{
					ID:       id,
					Calendar: calIdx,
					Title:    ev.Title,
					Location: index.Location{Path: notePath},
				})
			}

			draft := calendar.NewEventDraft(initial, options, defaultIdx)
			model := eventedit.New(eventedit.Options{
				Draft:  draft,
				Submit: submit,
				Locale: cfg.Locale,
			})

			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("error running event editor: %w", err)
			}
			if notePath != "" {
				// Only report the id if the editor actually saved.
				if _, ok, err := idx.Resolve(id); err == nil && ok {
					fmt.Println(id)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "from", "", "Seed the draft from an event yaml file")
	cmd.Flags().StringVar(&notePath, "path", "", "Persist the event as a note at this path")
	return cmd
}

func newEventEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <event-id>",
		Short: "Edit an indexed event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTTY(); err != nil {
				return err
			}
			id := args[0]

			store, err := config.OpenStore()
			if err != nil {
				return err
			}
			cfg := store.Settings()

			options := cfg.CalendarOptions()
			if len(options) == 0 {
				return fmt.Errorf("no calendars configured; run `gcal settings` to add one")
			}

			idx, err := config.OpenIndex()
			if err != nil {
				return err
			}
			defer idx.Close()

			loc, ok, err := idx.Resolve(id)
			if err != nil {
				return fmt.Errorf("resolve event: %w", err)
			}
			if !ok {
				return fmt.Errorf("unknown event %s", id)
			}

			entries, err := idx.ByPath(loc.Path)
			if err != nil {
				return fmt.Errorf("look up event: %w", err)
			}
			calIdx := 0
			for _, e := range entries {
				if e.ID == id {
					calIdx = e.Calendar
					break
				}
			}
			if calIdx < 0 || calIdx >= len(options) {
				calIdx = cfg.DefaultCalendar
			}

			ev, _, err := frontmatter.ReadFile(loc.Path)
			if err != nil {
				return fmt.Errorf("read event note: %w", err)
			}
			if ev == nil {
				return fmt.Errorf("%s has no event frontmatter", loc.Path)
			}

			submit := func(_ context.Context, updated calendar.Event, newCalIdx int) error {
				if err := frontmatter.UpdateFile(loc.Path, updated); err != nil {
					return fmt.Errorf("update event note: %w", err)
				}
				return idx.Put(index.Entry{
					ID:       id,
					Calendar: newCalIdx,
					Title:    updated.Title,
					Location: loc,
				})
			}

			open := func(_ context.Context) error {
				return index.OpenFileForEvent(idx, index.EditorOpener(config.Editor()), id)
			}

			deleteEvent := func(_ context.Context) error {
				if loc.Line == nil {
					if err := os.Remove(loc.Path); err != nil && !os.IsNotExist(err) {
						return fmt.Errorf("remove event note: %w", err)
					}
				}
				return idx.Delete(id)
			}

			draft := calendar.NewEventDraft(ev, options, calIdx)
			model := eventedit.New(eventedit.Options{
				Draft:  draft,
				Submit: submit,
				Open:   open,
				Delete: deleteEvent,
				Locale: cfg.Locale,
			})

			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("error running event editor: %w", err)
			}
			return nil
		},
	}
	return cmd
}
