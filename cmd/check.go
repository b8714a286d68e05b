// Package cmd implements the command-line interface for spindle.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/spindle-cli/spindle/backend"
	"github.com/spindle-cli/spindle/color"
	"github.com/spindle-cli/spindle/icon"
	"github.com/spindle-cli/spindle/style"
)

// checkDecoder verifies the selected decoder executable is resolvable on the system
// PATH before the main loop begins. A missing decoder is a startup-fatal condition.
func checkDecoder(b backend.Backend) {
	if err := backend.Verify(b); err != nil {
		printMissingDependencyError(b.Name())
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + installPackage(dep)
	case "linux":
		installCmd = "sudo apt install " + installPackage(dep)
	case "windows":
		installCmd = "scoop install " + installPackage(dep)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Decoder", icon.Get(icon.Fail)))
	body := fmt.Sprintf("The required decoder '%s' was not found in your PATH.", dep)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.HiGreen).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}

// installPackage maps a decoder executable to its distribution package name.
func installPackage(dep string) string {
	if dep == "ffplay" {
		return "ffmpeg"
	}
	return dep
}
