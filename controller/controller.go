// Package controller implements the playback state machine coordinating the decoder
// backend, the terminal poller, and the optional kiosk peripherals inside a single
// polling loop.
package controller

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spindle-cli/spindle/backend"
	"github.com/spindle-cli/spindle/icon"
	"github.com/spindle-cli/spindle/log"
	"github.com/spindle-cli/spindle/playlist"
	"github.com/spindle-cli/spindle/style"
	"github.com/spindle-cli/spindle/util"
)

// State is the playback phase of the controller.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Controller owns the single live decoder handle, the current track list, and the
// playback state. All mutation happens on the loop goroutine, so there is no internal
// locking.
type Controller struct {
	backend backend.Backend
	tracks  []playlist.Track
	index   int
	state   State

	// Wall-clock bookkeeping for the seek-restart pause strategy. Meaningless for
	// decoders that toggle in place.
	savedPos  time.Duration
	startedAt time.Time

	current string // active playlist name, empty in fixed-directory mode
	lastTag string // last tag identifier seen, for change detection

	out io.Writer
}

// New creates a controller over a non-empty track list.
func New(b backend.Backend, tracks []playlist.Track) (*Controller, error) {
	if len(tracks) == 0 {
		return nil, fmt.Errorf("track list is empty")
	}

	return &Controller{
		backend: b,
		tracks:  tracks,
		out:     os.Stdout,
	}, nil
}

// SetOutput redirects the controller's console output, primarily for tests.
func (c *Controller) SetOutput(w io.Writer) {
	c.out = w
}

// SetPlaylist records the active playlist name for display purposes.
func (c *Controller) SetPlaylist(name string) {
	c.current = name
}

// State returns the current playback phase.
func (c *Controller) State() State { return c.state }

// Index returns the current track index.
func (c *Controller) Index() int { return c.index }

// Track returns the current track.
func (c *Controller) Track() playlist.Track { return c.tracks[c.index] }

// Sounding reports whether audio is currently audible, which is what the kiosk
// status lamp reflects.
func (c *Controller) Sounding() bool { return c.state == Playing }

// PlayTrack stops any live decoder and starts the track at index i from the beginning.
func (c *Controller) PlayTrack(i int) error {
	if err := c.backend.Stop(); err != nil {
		log.Warnf("stop decoder: %v", err)
	}

	c.index = i
	c.savedPos = 0

	if err := c.backend.Start(c.tracks[i].Path, 0); err != nil {
		c.state = Stopped
		return fmt.Errorf("play %s: %w", c.tracks[i].Name(), err)
	}

	c.startedAt = time.Now()
	c.state = Playing
	c.showNowPlaying()
	return nil
}

// TogglePause suspends or resumes playback. The strategy is a backend capability:
// decoders with a control stream are toggled in place; the rest are torn down on pause
// and restarted at the elapsed wall-clock offset on resume.
func (c *Controller) TogglePause() error {
	switch c.state {
	case Playing:
		if toggler, ok := c.backend.(backend.InPlaceToggler); ok {
			if err := toggler.ToggleSignal(); err != nil {
				return err
			}
		} else {
			c.savedPos += time.Since(c.startedAt)
			if err := c.backend.Stop(); err != nil {
				return err
			}
		}
		c.state = Paused
		c.writeln("%s Paused", icon.Get(icon.Pause))

	case Paused:
		if toggler, ok := c.backend.(backend.InPlaceToggler); ok {
			if err := toggler.ToggleSignal(); err != nil {
				return err
			}
		} else {
			if err := c.backend.Start(c.Track().Path, c.savedPos); err != nil {
				c.state = Stopped
				return fmt.Errorf("resume %s: %w", c.Track().Name(), err)
			}
			c.startedAt = time.Now()
		}
		c.state = Playing
		c.writeln("%s Resumed", icon.Get(icon.Play))

	case Stopped:
		return c.PlayTrack(c.index)
	}

	return nil
}

// Next advances to the following track, wrapping past the end.
func (c *Controller) Next() error {
	return c.PlayTrack((c.index + 1) % len(c.tracks))
}

// Previous steps back to the preceding track, wrapping past the start.
func (c *Controller) Previous() error {
	return c.PlayTrack((c.index - 1 + len(c.tracks)) % len(c.tracks))
}

// ChangePlaylist swaps the track list for the named playlist under root and starts its
// first track. On failure the current track list, index, and playback state are left
// untouched.
func (c *Controller) ChangePlaylist(root, name string) error {
	tracks, err := playlist.Load(root, name)
	if err != nil {
		return err
	}

	if err := c.backend.Stop(); err != nil {
		log.Warnf("stop decoder: %v", err)
	}

	c.tracks = tracks
	c.current = name
	c.writeln("%s Playlist: %s (%s)", icon.Get(icon.Tag), style.Bold(name),
		util.Quantify(len(tracks), "track", "tracks"))

	return c.PlayTrack(0)
}

// Tick performs the once-per-iteration end-of-track check: a decoder that exited on its
// own while we believe we are playing means the track finished, so advance. A decoder
// crash is indistinguishable from a clean finish here and is treated the same way.
func (c *Controller) Tick() error {
	if c.state == Playing && c.backend.Exited() {
		log.Debugf("track %d ended, advancing", c.index)
		return c.Next()
	}
	return nil
}

// Quit stops any live decoder and leaves the controller stopped. Idempotent.
func (c *Controller) Quit() {
	if err := c.backend.Stop(); err != nil {
		log.Warnf("stop decoder: %v", err)
	}
	c.state = Stopped
}

// showNowPlaying emits the track banner. Lines end with CRLF because the terminal is
// in raw mode while the loop runs.
func (c *Controller) showNowPlaying() {
	c.writeln("")
	c.writeln("%s %s", icon.Get(icon.Note), style.Title("Now playing: "+c.Track().Name()))
	c.writeln("%s", style.Faint(fmt.Sprintf("Track %d of %d", c.index+1, len(c.tracks))))
}

func (c *Controller) writeln(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\r\n", args...)
}
