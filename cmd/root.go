// Package cmd implements the command-line interface for spindle.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spindle-cli/spindle/constant"
	"github.com/spindle-cli/spindle/icon"
	"github.com/spindle-cli/spindle/key"
	"github.com/spindle-cli/spindle/log"
	"github.com/spindle-cli/spindle/util"
	"github.com/spindle-cli/spindle/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g. emoji, plain, nerd)")
	_ = viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons"))

	rootCmd.PersistentFlags().StringP("decoder", "D", "", "Select the external decoder (mpg123 or ffplay)")
	_ = viper.BindPFlag(key.PlayerDefault, rootCmd.PersistentFlags().Lookup("decoder"))

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the spindle application.
var rootCmd = &cobra.Command{
	Use:   constant.Spindle,
	Short: "A terminal jukebox driving an external audio decoder",
	Long: constant.Spindle + ` plays directories of audio tracks through an external decoder
process (mpg123 or ffplay), controlled from the keyboard, a playlist
library, or a contactless tag reader.`,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		_ = cmd.Help()
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
