package backend

import (
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/spindle-cli/spindle/log"
)

// FFplay implements the Backend interface over the ffplay decoder.
// ffplay exposes no control stream once headless, so pausing tears the process down and
// resuming restarts it at a seek offset. The controller supplies the offset; this adapter
// only knows how to start at one.
type FFplay struct {
	cmd     *exec.Cmd
	exited  chan struct{} // closed when the decoder process exits
	stopped bool          // set when termination was requested by us
	mu      sync.Mutex
}

// NewFFplay creates a new ffplay adapter (does not start playback).
func NewFFplay() *FFplay {
	return &FFplay{}
}

// Name returns the decoder executable name.
func (f *FFplay) Name() string { return "ffplay" }

// ffplayArgs builds the decoder invocation for a track, optionally starting at an offset.
// -nodisp suppresses the video window, -autoexit makes the process exit at end of track
// so the controller's liveness poll doubles as track-advance detection.
func ffplayArgs(path string, seek time.Duration) []string {
	args := []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}
	if seek > 0 {
		args = append(args, "-ss", strconv.Itoa(int(seek.Seconds())))
	}
	return append(args, path)
}

// Start spawns a decoder process for the given track at the given offset.
func (f *FFplay) Start(path string, seek time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.stopLocked(); err != nil {
		return err
	}

	cmd := exec.Command(f.Name(), ffplayArgs(path, seek)...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdin = nil
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffplay: %w", err)
	}

	f.cmd = cmd
	f.stopped = false

	exited := make(chan struct{})
	f.exited = exited
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	log.Debugf("ffplay started for %s at %s (pid %d)", path, seek, cmd.Process.Pid)
	return nil
}

// Stop terminates the live decoder, if any, waiting for it with a bounded grace period.
func (f *FFplay) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopLocked()
}

func (f *FFplay) stopLocked() error {
	if f.cmd == nil {
		return nil
	}

	f.stopped = true
	err := terminate(f.cmd, f.exited)

	f.cmd = nil
	f.exited = nil
	return err
}

// Exited reports whether the decoder terminated on its own.
func (f *FFplay) Exited() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cmd == nil || f.stopped {
		return false
	}

	select {
	case <-f.exited:
		return true
	default:
		return false
	}
}
