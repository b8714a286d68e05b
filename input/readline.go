package input

import (
	"fmt"
	"io"
	"time"
)

// ReadLine collects a full line through the poller while the terminal is raw, echoing
// as it goes. The loop's read pump owns stdin, so prompts issued mid-loop must come
// through here rather than through a second reader.
func (p *Poller) ReadLine(w io.Writer, prompt string) (string, error) {
	fmt.Fprintf(w, "%s", prompt)

	var line []byte
	for {
		b, present := p.Poll(time.Second).Get()
		if !present {
			continue
		}

		switch b {
		case '\r', '\n':
			fmt.Fprint(w, "\r\n")
			return string(line), nil

		case 0x03, 0x04: // ^C / ^D abandon the prompt
			fmt.Fprint(w, "\r\n")
			return "", fmt.Errorf("prompt aborted")

		case 0x7f, '\b':
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(w, "\b \b")
			}

		default:
			if b >= 0x20 && b < 0x7f {
				line = append(line, b)
				fmt.Fprintf(w, "%c", b)
			}
		}
	}
}
