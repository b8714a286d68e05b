// Package input implements a raw-mode, byte-at-a-time terminal poller.
//
// For the lifetime of the main loop the controlling terminal is switched to unbuffered,
// unechoed input so single keypresses arrive without a newline. Restoration of the prior
// mode is idempotent and must run on every exit path, including interrupts.
package input

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/samber/mo"
	"golang.org/x/term"

	"github.com/spindle-cli/spindle/log"
)

// Poller reads single bytes from an input stream with a bounded wait per poll.
type Poller struct {
	fd     int
	source io.Reader
	prior  *term.State // non-nil only while raw mode is active
	bytes  chan byte
	once   sync.Once
	mu     sync.Mutex
}

// New creates a poller over the process's standard input.
func New() *Poller {
	return &Poller{
		fd:     int(os.Stdin.Fd()),
		source: os.Stdin,
		bytes:  make(chan byte, 8),
	}
}

// NewFrom creates a poller over an arbitrary reader. No terminal mode is touched; this
// constructor exists for tests and non-tty input.
func NewFrom(r io.Reader) *Poller {
	return &Poller{
		fd:     -1,
		source: r,
		bytes:  make(chan byte, 8),
	}
}

// Enter switches the terminal to raw mode and starts the background read pump.
// Failure to enter raw mode degrades to the terminal's default line-buffered mode
// rather than failing the program.
func (p *Poller) Enter() {
	if p.fd >= 0 && term.IsTerminal(p.fd) {
		prior, err := term.MakeRaw(p.fd)
		if err != nil {
			log.Warnf("raw terminal mode unavailable, input will be line-buffered: %v", err)
		} else {
			p.mu.Lock()
			p.prior = prior
			p.mu.Unlock()
		}
	}

	p.once.Do(func() {
		go p.pump()
	})
}

// pump moves bytes from the source to the poll channel, one at a time.
// It terminates when the source reaches EOF or errors.
func (p *Poller) pump() {
	buf := make([]byte, 1)
	for {
		n, err := p.source.Read(buf)
		if n > 0 {
			p.bytes <- buf[0]
		}
		if err != nil {
			return
		}
	}
}

// Poll blocks for at most timeout and returns at most one input byte.
func (p *Poller) Poll(timeout time.Duration) mo.Option[byte] {
	select {
	case b := <-p.bytes:
		return mo.Some(b)
	case <-time.After(timeout):
		return mo.None[byte]()
	}
}

// Exit restores the prior terminal mode. Safe to call multiple times and from any
// cleanup path.
func (p *Poller) Exit() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prior == nil {
		return
	}

	if err := term.Restore(p.fd, p.prior); err != nil {
		log.Warnf("restore terminal mode: %v", err)
	}
	p.prior = nil
}
