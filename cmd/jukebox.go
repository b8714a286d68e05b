// Package cmd implements the command-line interface for spindle.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/spindle-cli/spindle/backend"
	"github.com/spindle-cli/spindle/controller"
	"github.com/spindle-cli/spindle/input"
	"github.com/spindle-cli/spindle/playlist"
	"github.com/spindle-cli/spindle/where"
)

func init() {
	rootCmd.AddCommand(jukeboxCmd)

	jukeboxCmd.Flags().StringP("playlist", "p", "", "Playlist to start with (prompts if unset)")
}

// jukeboxCmd plays from the playlist library, with runtime playlist switching.
var jukeboxCmd = &cobra.Command{
	Use:   "jukebox",
	Short: "Play from the playlist library with runtime playlist switching",
	Long: `Play from the playlist library: a root directory holding one subdirectory per
playlist. The 'c' key prompts for another playlist without leaving the loop.`,
	Run: func(cmd *cobra.Command, args []string) {
		b, err := backend.FromConfig()
		handleErr(err)
		checkDecoder(b)

		root := where.Playlists()
		names := playlist.List(root)
		if len(names) == 0 {
			handleErr(fmt.Errorf("playlist library %s is empty; create one subdirectory per playlist", root))
		}

		name := lo.Must(cmd.Flags().GetString("playlist"))
		if name == "" {
			prompt := &survey.Select{
				Message: "Select a playlist:",
				Options: names,
			}
			handleErr(survey.AskOne(prompt, &name))
		}

		tracks, err := playlist.Load(root, name)
		handleErr(err)

		c, err := controller.New(b, tracks)
		handleErr(err)
		c.SetPlaylist(name)

		handleErr(runSession(c, func(p *input.Poller) controller.RunOptions {
			return controller.RunOptions{
				Root: root,
				// The loop's read pump owns stdin while the terminal is raw, so the
				// runtime prompt goes through the poller instead of a second reader.
				PromptPlaylist: func() (string, error) {
					return p.ReadLine(os.Stdout, "\r\nPlaylist name: ")
				},
			}
		}))
	},
}
