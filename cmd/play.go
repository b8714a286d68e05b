// Package cmd implements the command-line interface for spindle.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spindle-cli/spindle/backend"
	"github.com/spindle-cli/spindle/controller"
	"github.com/spindle-cli/spindle/filesystem"
	"github.com/spindle-cli/spindle/input"
	"github.com/spindle-cli/spindle/playlist"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

// playCmd plays a single directory of tracks, front to back, wrapping around.
var playCmd = &cobra.Command{
	Use:     "play <directory>",
	Short:   "Play the audio files in a directory",
	Long:    `Play the audio files directly inside the given directory, sorted by filename, looping past both ends.`,
	Args:    cobra.ExactArgs(1),
	Example: "  spindle play ~/Music/road-trip",
	Run: func(cmd *cobra.Command, args []string) {
		b, err := backend.FromConfig()
		handleErr(err)
		checkDecoder(b)

		dir := args[0]
		if isDir, err := filesystem.API().IsDir(dir); err != nil || !isDir {
			handleErr(fmt.Errorf("%s is not a valid directory", dir))
		}

		tracks, err := playlist.Scan(dir)
		handleErr(err)

		c, err := controller.New(b, tracks)
		handleErr(err)

		handleErr(runSession(c, func(*input.Poller) controller.RunOptions {
			return controller.RunOptions{}
		}))
	},
}
