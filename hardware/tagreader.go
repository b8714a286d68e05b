package hardware

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/mo"

	"github.com/spindle-cli/spindle/filesystem"
	"github.com/spindle-cli/spindle/log"
)

// LineTagReader reads newline-terminated tag identifiers from a character device.
// Serial contactless readers present each scanned card as one line of text, so a
// background scanner drains the device and Poll hands the lines out one per tick.
type LineTagReader struct {
	source io.ReadCloser
	tags   chan string
}

// OpenLineTagReader attaches to the reader device at the given path.
func OpenLineTagReader(devicePath string) (*LineTagReader, error) {
	f, err := filesystem.API().Open(devicePath)
	if err != nil {
		return nil, fmt.Errorf("open tag reader %s: %w", devicePath, err)
	}
	return NewLineTagReader(f), nil
}

// NewLineTagReader wraps an arbitrary line source. Exposed for tests and for readers
// that arrive over something other than a device file.
func NewLineTagReader(source io.ReadCloser) *LineTagReader {
	r := &LineTagReader{
		source: source,
		tags:   make(chan string, 4),
	}
	go r.scan()
	return r
}

// scan pumps trimmed, non-empty lines from the device into the poll channel.
// It terminates when the device reaches EOF or errors.
func (r *LineTagReader) scan() {
	scanner := bufio.NewScanner(r.source)
	for scanner.Scan() {
		tag := strings.TrimSpace(scanner.Text())
		if tag == "" {
			continue
		}
		r.tags <- tag
	}
	if err := scanner.Err(); err != nil {
		log.Warnf("tag reader stopped: %v", err)
	}
}

// Poll returns the oldest unconsumed tag identifier, if any. Never blocks.
func (r *LineTagReader) Poll() mo.Option[string] {
	select {
	case tag := <-r.tags:
		return mo.Some(tag)
	default:
		return mo.None[string]()
	}
}

// Close releases the underlying device.
func (r *LineTagReader) Close() error {
	return r.source.Close()
}
