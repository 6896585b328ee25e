package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-calendar/cmd/config"
	"github.com/mattsolo1/grove-calendar/pkg/index"
)

// NewOpenCmd creates the `gcal open` command.
func NewOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <event-id>",
		Short: "Open the note behind an event in your editor",
		Long: `Open the file that holds an event's editable representation, jumping to
the event's line when it lives inside a daily note. Remote events have no
local representation and cannot be opened.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := config.OpenIndex()
			if err != nil {
				return err
			}
			defer idx.Close()

			return index.OpenFileForEvent(idx, index.EditorOpener(config.Editor()), args[0])
		},
	}
}
