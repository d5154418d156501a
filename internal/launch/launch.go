// Package launch starts external programs from stored launch strings.
package launch

import (
	"fmt"
	"os/exec"

	"github.com/google/shlex"
)

// Starter spawns processes fire-and-forget: the organizer keeps running
// while the launched game does.
type Starter struct{}

// NewStarter returns a process starter.
func NewStarter() *Starter {
	return &Starter{}
}

// Launch splits the stored command string into argv and starts it
// without waiting for it to exit. Only spawn refusal is reported; once
// the OS accepts the start there is no further visibility into the
// launched program.
func (s *Starter) Launch(command string) error {
	args, err := shlex.Split(command)
	if err != nil {
		return fmt.Errorf("failed to parse launch command %q: %w", command, err)
	}
	if len(args) == 0 {
		return fmt.Errorf("launch command is empty")
	}

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %w", args[0], err)
	}

	// Reap the child when it eventually exits.
	go cmd.Wait()

	return nil
}
