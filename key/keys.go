// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback Engine - these keys select and tune the external decoder process the controller drives.
const (
	PlayerDefault      = "player.default"
	PlayerExtension    = "player.extension"
	PlayerPollInterval = "player.poll_interval"
)

// Playlist Library - these keys locate the directory tree holding one subdirectory per playlist.
const (
	PlaylistsRoot = "playlists.root"
)

// Hardware Peripherals - these keys configure the kiosk variant's tag reader and status lamp.
const (
	HardwareTagDevice    = "hardware.tag_device"
	HardwareIndicatorPin = "hardware.indicator_pin"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general application behavior.
const (
	CliColored = "cli.colored"
)
