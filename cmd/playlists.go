// Package cmd implements the command-line interface for spindle.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spindle-cli/spindle/color"
	"github.com/spindle-cli/spindle/icon"
	"github.com/spindle-cli/spindle/playlist"
	"github.com/spindle-cli/spindle/style"
	"github.com/spindle-cli/spindle/util"
	"github.com/spindle-cli/spindle/where"
)

func init() {
	rootCmd.AddCommand(playlistsCmd)
}

// playlistsCmd lists the playlist library and the track count of each playlist.
var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List the playlists in the library",
	Run: func(cmd *cobra.Command, args []string) {
		root := where.Playlists()
		names := playlist.List(root)

		if len(names) == 0 {
			cmd.Printf("%s No playlists under %s\n", icon.Get(icon.Fail), root)
			return
		}

		cmd.Printf("%s\n\n", style.Bold(fmt.Sprintf("Playlists in %s:", root)))
		for _, name := range names {
			tracks, err := playlist.Load(root, name)
			if err != nil {
				cmd.Printf("  %s %s %s\n", icon.Get(icon.Tag), name, style.Faint("(no playable files)"))
				continue
			}

			cmd.Printf("  %s %s %s\n",
				icon.Get(icon.Tag),
				style.Fg(color.HiYellow)(name),
				style.Faint("("+util.Quantify(len(tracks), "track", "tracks")+")"))
		}
	},
}
