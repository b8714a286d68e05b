package backend

import (
	"os/exec"
	"time"

	"github.com/spindle-cli/spindle/log"
)

// stopGracePeriod bounds the wait for a decoder to honor a termination request before it
// is forcibly killed.
const stopGracePeriod = 3 * time.Second

// terminate requests graceful shutdown of a live decoder process and waits for the reaper
// channel to close, escalating to a process-group kill after the grace period.
func terminate(cmd *exec.Cmd, exited <-chan struct{}) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	select {
	case <-exited:
		// Already gone
		return nil
	default:
	}

	err := signalTerm(cmd)

	select {
	case <-exited:
	case <-time.After(stopGracePeriod):
		log.Warnf("decoder pid %d ignored termination, killing", cmd.Process.Pid)
		_ = killProcess(cmd)
		<-exited
	}

	return err
}
