// Package main is the entry point for the spindle jukebox.
package main

import (
	"github.com/samber/lo"

	"github.com/spindle-cli/spindle/cmd"
	"github.com/spindle-cli/spindle/config"
	"github.com/spindle-cli/spindle/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
