// Package cmd implements the command-line interface for spindle.
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spindle-cli/spindle/controller"
	"github.com/spindle-cli/spindle/input"
)

// runSession owns the process-global resources around one playback loop: the raw
// terminal mode and the interrupt subscription. Both are torn down on every exit path.
func runSession(c *controller.Controller, build func(p *input.Poller) controller.RunOptions) error {
	poller := input.New()
	poller.Enter()
	defer poller.Exit()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	opts := build(poller)
	opts.Poller = poller
	opts.Interrupt = interrupt

	return c.Run(opts)
}
