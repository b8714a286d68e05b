package backend

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/spindle-cli/spindle/key"
)

func TestArgs(t *testing.T) {
	Convey("Argument construction", t, func() {
		Convey("mpg123 enables the control interface in quiet mode", func() {
			args := mpg123Args("music/rock/a.mp3")
			So(args, ShouldResemble, []string{"-q", "--control", "music/rock/a.mp3"})
		})

		Convey("ffplay runs headless and exits at end of track", func() {
			args := ffplayArgs("music/rock/a.mp3", 0)
			So(args, ShouldResemble, []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "music/rock/a.mp3"})
		})

		Convey("ffplay receives a positive seek as a start offset", func() {
			args := ffplayArgs("a.mp3", 42*time.Second)
			So(args, ShouldResemble, []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-ss", "42", "a.mp3"})
		})
	})
}

func TestCapabilities(t *testing.T) {
	Convey("Capability tagging", t, func() {
		Convey("mpg123 toggles pause in place", func() {
			var b Backend = NewMPG123()
			_, ok := b.(InPlaceToggler)
			So(ok, ShouldBeTrue)
		})

		Convey("ffplay does not", func() {
			var b Backend = NewFFplay()
			_, ok := b.(InPlaceToggler)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestFromConfig(t *testing.T) {
	Convey("FromConfig", t, func() {
		Convey("Selects mpg123 by default", func() {
			viper.Set(key.PlayerDefault, "")
			b, err := FromConfig()
			So(err, ShouldBeNil)
			So(b.Name(), ShouldEqual, "mpg123")
		})

		Convey("Selects ffplay when configured", func() {
			viper.Set(key.PlayerDefault, "ffplay")
			b, err := FromConfig()
			So(err, ShouldBeNil)
			So(b.Name(), ShouldEqual, "ffplay")
		})

		Convey("Rejects unknown backends", func() {
			viper.Set(key.PlayerDefault, "winamp")
			_, err := FromConfig()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestExitedWithoutProcess(t *testing.T) {
	Convey("Exited is false with no live process", t, func() {
		So(NewMPG123().Exited(), ShouldBeFalse)
		So(NewFFplay().Exited(), ShouldBeFalse)
	})
}

func TestStopWithoutProcess(t *testing.T) {
	Convey("Stop is a no-op with no live process", t, func() {
		So(NewMPG123().Stop(), ShouldBeNil)
		So(NewFFplay().Stop(), ShouldBeNil)
	})
}
