package backend

import (
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/spindle-cli/spindle/log"
)

// pauseToggleByte is the single control command mpg123 understands on its control stream
// for suspending and resuming decoding in place.
const pauseToggleByte = 's'

// MPG123 implements the Backend interface over the mpg123 decoder.
// mpg123 is launched with its generic control interface enabled, which lets the
// controller pause and resume playback without restarting the process.
type MPG123 struct {
	cmd     *exec.Cmd
	control io.WriteCloser
	exited  chan struct{} // closed when the decoder process exits
	stopped bool          // set when termination was requested by us
	mu      sync.Mutex
}

// NewMPG123 creates a new mpg123 adapter (does not start playback).
func NewMPG123() *MPG123 {
	return &MPG123{}
}

// Name returns the decoder executable name.
func (m *MPG123) Name() string { return "mpg123" }

// mpg123Args builds the decoder invocation for a track. Quiet mode keeps the child's
// output from interleaving with the controller's own terminal writes.
func mpg123Args(path string) []string {
	return []string{"-q", "--control", path}
}

// Start spawns a decoder process for the given track. mpg123 pauses in place, so the
// seek offset is never meaningful for it and is ignored.
func (m *MPG123) Start(path string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.stopLocked(); err != nil {
		return err
	}

	cmd := exec.Command(m.Name(), mpg123Args(path)...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	control, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("open mpg123 control stream: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpg123: %w", err)
	}

	m.cmd = cmd
	m.control = control
	m.stopped = false

	// Background goroutine to reap the process and prevent zombies
	exited := make(chan struct{})
	m.exited = exited
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	log.Debugf("mpg123 started for %s (pid %d)", path, cmd.Process.Pid)
	return nil
}

// ToggleSignal sends the pause-toggle command byte to the live decoder.
func (m *MPG123) ToggleSignal() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.control == nil || m.cmd == nil {
		return fmt.Errorf("no live decoder to signal")
	}

	if _, err := m.control.Write([]byte{pauseToggleByte}); err != nil {
		return fmt.Errorf("signal mpg123: %w", err)
	}
	return nil
}

// Stop terminates the live decoder, if any, waiting for it with a bounded grace period.
func (m *MPG123) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopLocked()
}

func (m *MPG123) stopLocked() error {
	if m.cmd == nil {
		return nil
	}

	m.stopped = true
	err := terminate(m.cmd, m.exited)

	m.cmd = nil
	m.control = nil
	m.exited = nil
	return err
}

// Exited reports whether the decoder terminated on its own.
func (m *MPG123) Exited() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cmd == nil || m.stopped {
		return false
	}

	select {
	case <-m.exited:
		return true
	default:
		return false
	}
}
