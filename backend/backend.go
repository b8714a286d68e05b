// Package backend defines a unified abstraction layer for external audio decoder processes.
// The controller drives exactly one decoder process at a time through this contract; the
// concrete implementations target 'mpg123' (in-place pause toggling via its control stream)
// and 'ffplay' (pause by termination, resume by seek-restart).
package backend

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/spf13/viper"

	"github.com/spindle-cli/spindle/key"
)

// Backend encapsulates the required capabilities for a decoder process adapter.
type Backend interface {
	// Name returns the decoder executable name as resolved on the system PATH.
	Name() string

	// Start spawns a decoder process for the given track. A positive seek offset is
	// passed as a start position when the decoder supports it; implementations without
	// seek support ignore it. Any previously live process is stopped first.
	Start(path string, seek time.Duration) error

	// Stop requests graceful termination of the live process, if any, and waits for it
	// to exit. The wait is bounded: unresponsive processes are forcibly killed.
	Stop() error

	// Exited reports whether the process has terminated on its own (end of track)
	// without being explicitly stopped. Non-blocking.
	Exited() bool
}

// InPlaceToggler is an optional capability: the decoder accepts a pause-toggle command
// on its control stream while running, so pausing never tears the process down.
type InPlaceToggler interface {
	// ToggleSignal sends a single pause-toggle command byte to the live process.
	ToggleSignal() error
}

// FromConfig constructs the decoder adapter selected by the player.default setting.
func FromConfig() (Backend, error) {
	name := viper.GetString(key.PlayerDefault)
	switch name {
	case "mpg123", "":
		return NewMPG123(), nil
	case "ffplay":
		return NewFFplay(), nil
	default:
		return nil, fmt.Errorf("unknown decoder backend \"%s\" (available: mpg123, ffplay)", name)
	}
}

// Verify confirms the backend's executable is resolvable on the system PATH.
func Verify(b Backend) error {
	if _, err := exec.LookPath(b.Name()); err != nil {
		return fmt.Errorf("decoder \"%s\" not found in PATH: %w", b.Name(), err)
	}
	return nil
}
