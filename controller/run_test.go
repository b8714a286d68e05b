package controller

import (
	"os"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/spindle-cli/spindle/filesystem"
	"github.com/spindle-cli/spindle/input"
	"github.com/spindle-cli/spindle/key"
)

// fakeTagReader replays a scripted sequence of scans, one per poll.
type fakeTagReader struct {
	scans []string
}

func (f *fakeTagReader) Poll() mo.Option[string] {
	if len(f.scans) == 0 {
		return mo.None[string]()
	}
	tag := f.scans[0]
	f.scans = f.scans[1:]
	return mo.Some(tag)
}

func (f *fakeTagReader) Close() error { return nil }

// fakeIndicator records the lamp levels it was driven to.
type fakeIndicator struct {
	levels []bool
}

func (f *fakeIndicator) Set(sounding bool) error {
	f.levels = append(f.levels, sounding)
	return nil
}

func (f *fakeIndicator) Close() error { return nil }

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		viper.Set(key.PlayerPollInterval, 1)

		Convey("Dispatches keys and quits on q", func() {
			b := &fakeBackend{}
			c := newTestController(b, threeTracks())

			poller := input.NewFrom(strings.NewReader("nNq"))
			poller.Enter()
			defer poller.Exit()

			So(c.Run(RunOptions{Poller: poller}), ShouldBeNil)
			So(c.Index(), ShouldEqual, 2)
			So(c.State(), ShouldEqual, Stopped)
			So(b.live, ShouldBeFalse)
		})

		Convey("Interrupt runs the same cleanup path", func() {
			b := &fakeBackend{}
			c := newTestController(b, threeTracks())

			poller := input.NewFrom(strings.NewReader(""))
			poller.Enter()
			defer poller.Exit()

			interrupt := make(chan os.Signal, 1)
			interrupt <- os.Interrupt

			So(c.Run(RunOptions{Poller: poller, Interrupt: interrupt}), ShouldBeNil)
			So(b.live, ShouldBeFalse)
		})

		Convey("A resting tag switches the playlist only once", func() {
			filesystem.SetMemMapFs()
			viper.Set(key.PlayerExtension, ".mp3")
			fs := filesystem.API()
			_ = fs.MkdirAll("/library/rock", 0755)
			_ = fs.WriteFile("/library/rock/a.mp3", []byte("x"), 0644)

			b := &fakeBackend{}
			c := newTestController(b, threeTracks())

			// The two 'x' keys are unmapped; they only pace the loop through three
			// ticks so every scripted scan gets polled.
			poller := input.NewFrom(strings.NewReader("xxq"))
			poller.Enter()
			defer poller.Exit()

			tags := &fakeTagReader{scans: []string{"rock", "rock", "rock"}}
			So(c.Run(RunOptions{Poller: poller, Tags: tags, Root: "/library"}), ShouldBeNil)

			// One start for the initial track, one for the playlist change. The
			// repeated scans of the same tag must not restart the playlist.
			So(b.starts, ShouldHaveLength, 2)
			So(b.starts[1].path, ShouldEqual, "/library/rock/a.mp3")
		})

		Convey("The indicator tracks whether audio is sounding", func() {
			b := &fakeBackend{}
			c := newTestController(b, threeTracks())

			poller := input.NewFrom(strings.NewReader("pq"))
			poller.Enter()
			defer poller.Exit()

			lamp := &fakeIndicator{}
			So(c.Run(RunOptions{Poller: poller, Indicator: lamp}), ShouldBeNil)

			So(lamp.levels, ShouldNotBeEmpty)
			// Playing on the first tick, paused by the time the second one lands.
			So(lamp.levels[0], ShouldBeTrue)
			So(lamp.levels[len(lamp.levels)-1], ShouldBeFalse)
		})
	})
}
