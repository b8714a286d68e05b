// Package hardware abstracts the kiosk peripherals: the contactless tag reader that
// selects playlists and the status lamp that reflects whether audio is sounding.
//
// The controller depends only on the interfaces here; concrete peripherals are
// constructed and torn down by the command shell that owns the process lifecycle.
package hardware

import "github.com/samber/mo"

// TagReader yields at most one scanned tag identifier per poll, without blocking.
type TagReader interface {
	// Poll returns the most recent unconsumed tag identifier, if any.
	Poll() mo.Option[string]
	Close() error
}

// Indicator is a binary output reflecting "audio is currently sounding".
type Indicator interface {
	Set(sounding bool) error
	Close() error
}

// NoopIndicator satisfies Indicator without hardware, for development off-device
// and for kiosk installs that wire no lamp.
type NoopIndicator struct{}

func (NoopIndicator) Set(bool) error { return nil }
func (NoopIndicator) Close() error   { return nil }
