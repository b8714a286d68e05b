package controller

import (
	"io"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/spindle-cli/spindle/filesystem"
	"github.com/spindle-cli/spindle/key"
	"github.com/spindle-cli/spindle/playlist"
)

// fakeBackend scripts a decoder without spawning processes. Setting exited simulates
// the process ending on its own; Start clears it again, as a real respawn would.
type fakeBackend struct {
	starts   []startCall
	stops    int
	live     bool
	exited   bool
	startErr error
}

type startCall struct {
	path string
	seek time.Duration
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Start(path string, seek time.Duration) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.starts = append(f.starts, startCall{path, seek})
	f.live = true
	f.exited = false
	return nil
}

func (f *fakeBackend) Stop() error {
	if f.live {
		f.stops++
		f.live = false
	}
	return nil
}

func (f *fakeBackend) Exited() bool {
	return f.live && f.exited
}

// fakeToggler adds the in-place pause capability.
type fakeToggler struct {
	fakeBackend
	toggles int
}

func (f *fakeToggler) ToggleSignal() error {
	f.toggles++
	return nil
}

func threeTracks() []playlist.Track {
	return []playlist.Track{
		{Path: "/m/a.mp3"},
		{Path: "/m/b.mp3"},
		{Path: "/m/c.mp3"},
	}
}

func newTestController(b interface {
	Name() string
	Start(string, time.Duration) error
	Stop() error
	Exited() bool
}, tracks []playlist.Track) *Controller {
	c, err := New(b, tracks)
	So(err, ShouldBeNil)
	c.SetOutput(io.Discard)
	return c
}

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("Rejects an empty track list", func() {
			_, err := New(&fakeBackend{}, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestWraparound(t *testing.T) {
	Convey("Track index wraparound", t, func() {
		b := &fakeBackend{}
		c := newTestController(b, threeTracks())
		So(c.PlayTrack(0), ShouldBeNil)

		Convey("Next cycles 0,1,2,0", func() {
			visited := []int{c.Index()}
			for i := 0; i < 3; i++ {
				So(c.Next(), ShouldBeNil)
				visited = append(visited, c.Index())
			}
			So(visited, ShouldResemble, []int{0, 1, 2, 0})
		})

		Convey("Previous cycles 0,2,1,0", func() {
			visited := []int{c.Index()}
			for i := 0; i < 3; i++ {
				So(c.Previous(), ShouldBeNil)
				visited = append(visited, c.Index())
			}
			So(visited, ShouldResemble, []int{0, 2, 1, 0})
		})

		Convey("Two nexts then one more wraps back to the first track", func() {
			So(c.Next(), ShouldBeNil)
			So(c.Next(), ShouldBeNil)
			So(c.Index(), ShouldEqual, 2)
			So(c.Track().Path, ShouldEqual, "/m/c.mp3")

			So(c.Next(), ShouldBeNil)
			So(c.Index(), ShouldEqual, 0)
			So(c.Track().Path, ShouldEqual, "/m/a.mp3")
		})
	})
}

func TestTogglePause(t *testing.T) {
	Convey("TogglePause", t, func() {
		Convey("In-place strategy signals the live process and keeps it alive", func() {
			b := &fakeToggler{}
			c := newTestController(b, threeTracks())
			So(c.PlayTrack(1), ShouldBeNil)

			So(c.TogglePause(), ShouldBeNil)
			So(c.State(), ShouldEqual, Paused)

			So(c.TogglePause(), ShouldBeNil)
			So(c.State(), ShouldEqual, Playing)

			So(c.Index(), ShouldEqual, 1)
			So(b.toggles, ShouldEqual, 2)
			So(b.starts, ShouldHaveLength, 1)
			So(b.stops, ShouldEqual, 0)
		})

		Convey("Seek-restart strategy kills on pause and resumes at an offset", func() {
			b := &fakeBackend{}
			c := newTestController(b, threeTracks())
			So(c.PlayTrack(1), ShouldBeNil)

			So(c.TogglePause(), ShouldBeNil)
			So(c.State(), ShouldEqual, Paused)
			So(b.live, ShouldBeFalse)

			So(c.TogglePause(), ShouldBeNil)
			So(c.State(), ShouldEqual, Playing)
			So(c.Index(), ShouldEqual, 1)

			So(b.starts, ShouldHaveLength, 2)
			resume := b.starts[1]
			So(resume.path, ShouldEqual, "/m/b.mp3")
			So(resume.seek, ShouldBeGreaterThanOrEqualTo, 0)
		})

		Convey("From stopped, toggling starts the current track", func() {
			b := &fakeBackend{}
			c := newTestController(b, threeTracks())

			So(c.TogglePause(), ShouldBeNil)
			So(c.State(), ShouldEqual, Playing)
			So(c.Index(), ShouldEqual, 0)
		})
	})
}

func TestAutoAdvance(t *testing.T) {
	Convey("End-of-track auto-advance", t, func() {
		b := &fakeBackend{}
		c := newTestController(b, threeTracks())
		So(c.PlayTrack(0), ShouldBeNil)

		Convey("Advances exactly once per exit event", func() {
			// A decoder crash looks identical to a clean finish; both advance.
			b.exited = true
			So(c.Tick(), ShouldBeNil)
			So(c.Index(), ShouldEqual, 1)

			// The respawned decoder is live again, so the same event cannot re-fire.
			So(c.Tick(), ShouldBeNil)
			So(c.Index(), ShouldEqual, 1)
		})

		Convey("Does not advance while paused", func() {
			So(c.TogglePause(), ShouldBeNil)
			b.exited = true
			So(c.Tick(), ShouldBeNil)
			So(c.Index(), ShouldEqual, 0)
			So(c.State(), ShouldEqual, Paused)
		})

		Convey("Does nothing while the decoder is live", func() {
			So(c.Tick(), ShouldBeNil)
			So(c.Index(), ShouldEqual, 0)
		})
	})
}

func TestChangePlaylist(t *testing.T) {
	Convey("ChangePlaylist", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.PlayerExtension, ".mp3")
		fs := filesystem.API()
		_ = fs.MkdirAll("/library/rock", 0755)
		_ = fs.MkdirAll("/library/empty", 0755)
		_ = fs.WriteFile("/library/rock/z.mp3", []byte("x"), 0644)
		_ = fs.WriteFile("/library/rock/y.mp3", []byte("x"), 0644)

		b := &fakeBackend{}
		c := newTestController(b, threeTracks())
		So(c.PlayTrack(2), ShouldBeNil)

		Convey("Swaps the list, resets the index, and plays track 0", func() {
			So(c.ChangePlaylist("/library", "rock"), ShouldBeNil)
			So(c.Index(), ShouldEqual, 0)
			So(c.State(), ShouldEqual, Playing)
			So(c.Track().Path, ShouldEqual, "/library/rock/y.mp3")
		})

		Convey("Unknown playlist leaves everything untouched", func() {
			err := c.ChangePlaylist("/library", "polka")
			So(err, ShouldNotBeNil)
			So(c.Index(), ShouldEqual, 2)
			So(c.State(), ShouldEqual, Playing)
			So(c.Track().Path, ShouldEqual, "/m/c.mp3")
		})

		Convey("Playlist with no playable files leaves everything untouched", func() {
			err := c.ChangePlaylist("/library", "empty")
			So(err, ShouldNotBeNil)
			So(c.Index(), ShouldEqual, 2)
			So(c.State(), ShouldEqual, Playing)
		})
	})
}

func TestQuit(t *testing.T) {
	Convey("Quit", t, func() {
		Convey("From playing", func() {
			b := &fakeBackend{}
			c := newTestController(b, threeTracks())
			So(c.PlayTrack(0), ShouldBeNil)

			c.Quit()
			So(b.live, ShouldBeFalse)
			So(c.State(), ShouldEqual, Stopped)
		})

		Convey("From paused", func() {
			b := &fakeToggler{}
			c := newTestController(b, threeTracks())
			So(c.PlayTrack(0), ShouldBeNil)
			So(c.TogglePause(), ShouldBeNil)

			c.Quit()
			So(b.live, ShouldBeFalse)
			So(c.State(), ShouldEqual, Stopped)
		})

		Convey("Is idempotent", func() {
			b := &fakeBackend{}
			c := newTestController(b, threeTracks())
			So(c.PlayTrack(0), ShouldBeNil)

			c.Quit()
			c.Quit()
			So(b.stops, ShouldEqual, 1)
			So(c.State(), ShouldEqual, Stopped)
		})
	})
}
