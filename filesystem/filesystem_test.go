package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestSubdirectories(t *testing.T) {
	Convey("Subdirectories", t, func() {
		SetMemMapFs()

		So(API().MkdirAll("/library/rock", 0755), ShouldBeNil)
		So(API().MkdirAll("/library/jazz", 0755), ShouldBeNil)
		So(API().WriteFile("/library/readme.txt", []byte("x"), 0644), ShouldBeNil)

		Convey("Should list only child directories", func() {
			names, err := Subdirectories("/library")
			So(err, ShouldBeNil)
			So(names, ShouldContain, "rock")
			So(names, ShouldContain, "jazz")
			So(names, ShouldNotContain, "readme.txt")
		})

		Convey("Should error on a missing path", func() {
			_, err := Subdirectories("/nowhere")
			So(err, ShouldNotBeNil)
		})
	})
}
