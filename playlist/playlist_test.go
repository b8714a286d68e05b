package playlist

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/spindle-cli/spindle/filesystem"
	"github.com/spindle-cli/spindle/key"
)

// seedLibrary builds an in-memory playlist library:
//
//	/library/rock:  b.mp3, a.mp3, cover.jpg
//	/library/jazz:  01.MP3
//	/library/empty: notes.txt
func seedLibrary() {
	filesystem.SetMemMapFs()
	viper.Set(key.PlayerExtension, ".mp3")

	fs := filesystem.API()
	write := func(path string) {
		_ = fs.WriteFile(path, []byte("x"), 0644)
	}

	_ = fs.MkdirAll("/library/rock", 0755)
	_ = fs.MkdirAll("/library/jazz", 0755)
	_ = fs.MkdirAll("/library/empty", 0755)
	write("/library/rock/b.mp3")
	write("/library/rock/a.mp3")
	write("/library/rock/cover.jpg")
	write("/library/jazz/01.MP3")
	write("/library/empty/notes.txt")
}

func TestScan(t *testing.T) {
	Convey("Scan", t, func() {
		seedLibrary()

		Convey("Returns matching files sorted lexicographically", func() {
			tracks, err := Scan("/library/rock")
			So(err, ShouldBeNil)
			So(tracks, ShouldHaveLength, 2)
			So(tracks[0].Path, ShouldEqual, "/library/rock/a.mp3")
			So(tracks[1].Path, ShouldEqual, "/library/rock/b.mp3")
		})

		Convey("Matches the extension case-insensitively", func() {
			tracks, err := Scan("/library/jazz")
			So(err, ShouldBeNil)
			So(tracks, ShouldHaveLength, 1)
		})

		Convey("Fails on a directory with no playable files", func() {
			_, err := Scan("/library/empty")
			So(err, ShouldNotBeNil)
		})

		Convey("Fails on a missing directory", func() {
			_, err := Scan("/library/missing")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestList(t *testing.T) {
	Convey("List", t, func() {
		seedLibrary()

		Convey("Returns sorted subdirectory names", func() {
			So(List("/library"), ShouldResemble, []string{"empty", "jazz", "rock"})
		})

		Convey("Is silently empty on access errors", func() {
			So(List("/nowhere"), ShouldBeEmpty)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		seedLibrary()

		Convey("Loads a valid playlist", func() {
			tracks, err := Load("/library", "rock")
			So(err, ShouldBeNil)
			So(tracks, ShouldHaveLength, 2)
		})

		Convey("Fails on an unknown playlist name", func() {
			_, err := Load("/library", "polka")
			So(err, ShouldNotBeNil)
		})

		Convey("Fails on a playlist with no playable files", func() {
			_, err := Load("/library", "empty")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestTrackName(t *testing.T) {
	Convey("Track Name", t, func() {
		So(Track{Path: "/library/rock/a.mp3"}.Name(), ShouldEqual, "a")
		So(Track{Path: "/library/rock/a.mp3"}.String(), ShouldEqual, "a")
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggest", t, func() {
		seedLibrary()

		Convey("Proposes the closest playlist name", func() {
			So(Suggest("/library", "rok").MustGet(), ShouldEqual, "rock")
		})

		Convey("Is empty when nothing is close", func() {
			So(Suggest("/library", "zzzzzz").IsAbsent(), ShouldBeTrue)
		})
	})
}
