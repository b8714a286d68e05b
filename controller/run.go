package controller

import (
	"fmt"
	"os"
	"time"
	"unicode"

	"github.com/spf13/viper"

	"github.com/spindle-cli/spindle/hardware"
	"github.com/spindle-cli/spindle/icon"
	"github.com/spindle-cli/spindle/input"
	"github.com/spindle-cli/spindle/key"
	"github.com/spindle-cli/spindle/log"
	"github.com/spindle-cli/spindle/playlist"
	"github.com/spindle-cli/spindle/style"
)

// RunOptions wires the loop's collaborators. Only the poller is mandatory; the tag
// reader, indicator, and playlist prompt enable the kiosk and jukebox behaviors.
type RunOptions struct {
	Poller    *input.Poller
	Tags      hardware.TagReader
	Indicator hardware.Indicator

	// Root is the playlist library root used by playlist changes.
	Root string

	// PromptPlaylist asks the user for a playlist name. When nil the 'c' command is
	// inert. The callback owns any terminal mode juggling it needs.
	PromptPlaylist func() (string, error)

	// Interrupt delivers OS signals that should run the quit path.
	Interrupt <-chan os.Signal
}

// Run drives the main polling loop until quit or interrupt. Each tick checks for
// natural end-of-track first, then peripherals, then user input, so a command issued
// in the same tick as an auto-advance always wins.
func (c *Controller) Run(opts RunOptions) error {
	interval := time.Duration(viper.GetInt(key.PlayerPollInterval)) * time.Millisecond
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	c.showControls(opts)

	if err := c.PlayTrack(0); err != nil {
		return err
	}

	// The decoder must not outlive the loop on any exit path.
	defer c.Quit()

	for {
		select {
		case <-opts.Interrupt:
			c.writeln("")
			c.writeln("Goodbye!")
			return nil
		default:
		}

		if err := c.Tick(); err != nil {
			c.report(err)
		}

		c.pollTags(opts)

		if opts.Indicator != nil {
			if err := opts.Indicator.Set(c.Sounding()); err != nil {
				log.Warnf("status lamp: %v", err)
			}
		}

		if b, present := opts.Poller.Poll(interval).Get(); present {
			quit, err := c.dispatch(b, opts)
			if err != nil {
				c.report(err)
			}
			if quit {
				return nil
			}
		}
	}
}

// pollTags consumes at most one scanned tag per tick and switches playlists when the
// tag differs from the last one seen, so a card resting on the reader does not restart
// its playlist every tick.
func (c *Controller) pollTags(opts RunOptions) {
	if opts.Tags == nil {
		return
	}

	tag, present := opts.Tags.Poll().Get()
	if !present || tag == c.lastTag {
		return
	}
	c.lastTag = tag

	log.Infof("tag scanned: %s", tag)
	if err := c.ChangePlaylist(opts.Root, tag); err != nil {
		c.report(err)
	}
}

// dispatch routes a single command key. Recoverable errors are returned for reporting;
// only 'q' ends the loop.
func (c *Controller) dispatch(b byte, opts RunOptions) (quit bool, err error) {
	switch unicode.ToLower(rune(b)) {
	case 'p':
		return false, c.TogglePause()

	case 'n':
		return false, c.Next()

	case 'b':
		return false, c.Previous()

	case 'c':
		if opts.PromptPlaylist == nil {
			return false, nil
		}

		name, err := opts.PromptPlaylist()
		if err != nil || name == "" {
			return false, err
		}

		if err := c.ChangePlaylist(opts.Root, name); err != nil {
			if suggestion, ok := playlist.Suggest(opts.Root, name).Get(); ok {
				return false, fmt.Errorf("%w (did you mean \"%s\"?)", err, suggestion)
			}
			return false, err
		}

	case 'q':
		c.Quit()
		c.writeln("")
		c.writeln("Goodbye!")
		return true, nil
	}

	return false, nil
}

// showControls prints the key binding header once before the loop starts.
func (c *Controller) showControls(opts RunOptions) {
	c.writeln("")
	c.writeln("%s", style.Bold("Controls:"))
	c.writeln("  'p' - Play/Pause")
	c.writeln("  'n' - Next track")
	c.writeln("  'b' - Previous track")
	if opts.PromptPlaylist != nil {
		c.writeln("  'c' - Change playlist")
	}
	c.writeln("  'q' - Quit")
}

func (c *Controller) report(err error) {
	log.Error(err)
	c.writeln("%s %s", icon.Get(icon.Fail), err.Error())
}
