// Package cmd implements the command-line interface for spindle.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spindle-cli/spindle/backend"
	"github.com/spindle-cli/spindle/controller"
	"github.com/spindle-cli/spindle/hardware"
	"github.com/spindle-cli/spindle/input"
	"github.com/spindle-cli/spindle/key"
	"github.com/spindle-cli/spindle/playlist"
	"github.com/spindle-cli/spindle/util"
	"github.com/spindle-cli/spindle/where"
)

func init() {
	rootCmd.AddCommand(kioskCmd)

	kioskCmd.Flags().StringP("device", "d", "", "Tag reader device path")
	_ = viper.BindPFlag(key.HardwareTagDevice, kioskCmd.Flags().Lookup("device"))

	kioskCmd.Flags().Int("pin", -1, "GPIO pin for the status lamp (-1 disables)")
	_ = viper.BindPFlag(key.HardwareIndicatorPin, kioskCmd.Flags().Lookup("pin"))

	kioskCmd.Flags().StringP("playlist", "p", "", "Playlist to start with (defaults to the first in the library)")
}

// kioskCmd runs the hardware variant: playlists are selected by scanning tags and a
// status lamp is driven high while audio is sounding.
var kioskCmd = &cobra.Command{
	Use:   "kiosk",
	Short: "Run the tag-driven kiosk with a status lamp",
	Long: `Run the hardware kiosk: each scanned tag selects the playlist of the same name
from the library, and the status lamp reflects whether audio is sounding.
The keyboard commands stay available alongside the tag reader.`,
	Run: func(cmd *cobra.Command, args []string) {
		b, err := backend.FromConfig()
		handleErr(err)
		checkDecoder(b)

		root := where.Playlists()
		names := playlist.List(root)
		if len(names) == 0 {
			handleErr(fmt.Errorf("playlist library %s is empty; create one subdirectory per playlist", root))
		}

		device := viper.GetString(key.HardwareTagDevice)
		if device == "" {
			handleErr(fmt.Errorf("no tag reader device configured (set %s or pass --device)", key.HardwareTagDevice))
		}

		tags, err := hardware.OpenLineTagReader(device)
		handleErr(err)
		defer util.Ignore(tags.Close)

		var indicator hardware.Indicator = hardware.NoopIndicator{}
		if pin := viper.GetInt(key.HardwareIndicatorPin); pin >= 0 {
			indicator, err = hardware.OpenSysfsIndicator(pin)
			handleErr(err)
		}
		defer util.Ignore(indicator.Close)

		name := lo.Must(cmd.Flags().GetString("playlist"))
		if name == "" {
			name = names[0]
		}

		tracks, err := playlist.Load(root, name)
		handleErr(err)

		c, err := controller.New(b, tracks)
		handleErr(err)
		c.SetPlaylist(name)

		handleErr(runSession(c, func(*input.Poller) controller.RunOptions {
			return controller.RunOptions{
				Root:      root,
				Tags:      tags,
				Indicator: indicator,
			}
		}))
	},
}
