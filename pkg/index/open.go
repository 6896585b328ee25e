package index

import (
	"fmt"
	"os"
	"os/exec"
)

// Resolver answers the event location query. Satisfied by *Index.
type Resolver interface {
	Resolve(id string) (Location, bool, error)
}

// Opener opens a file in an editing surface, placing the cursor at the
// start of line when one is given.
type Opener func(path string, line *int) error

// OpenFileForEvent navigates to the file backing an event. An event with no
// local representation is a hard error; a resolved path that is not a
// regular file aborts silently.
func OpenFileForEvent(res Resolver, open Opener, id string) error {
	loc, ok, err := res.Resolve(id)
	if err != nil {
		return fmt.Errorf("resolve event %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("event does not have local representation")
	}

	info, err := os.Stat(loc.Path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	return open(loc.Path, loc.Line)
}

// EditorOpener opens files with the given editor command. A line number is
// passed as +N, which vi-compatible editors place the cursor on.
func EditorOpener(editor string) Opener {
	if editor == "" {
		editor = "vi"
	}
	return func(path string, line *int) error {
		args := []string{}
		if line != nil {
			args = append(args, fmt.Sprintf("+%d", *line+1))
		}
		args = append(args, path)

		cmd := exec.Command(editor, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
}
