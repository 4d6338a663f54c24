// Package input turns typed commands into game intents.
package input

import (
	"bufio"
	"io"
	"strings"
)

// Reader yields intents from a line-oriented source such as stdin.
type Reader struct {
	scanner *bufio.Scanner
	device  Device
}

// NewReader reads one command per line from r
func NewReader(r io.Reader, device Device) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), device: device}
}

// Next returns the next non-empty command. The bool is false once the
// source is exhausted; the error is set only for read failures.
func (r *Reader) Next() (Intent, bool, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return Parse(r.device, line), true, nil
	}
	return Intent{}, false, r.scanner.Err()
}

// SplitScript splits a comma separated replay string ("d,d,s,hint") into
// intents. Unknown codes become ActionNone so the caller can report them.
func SplitScript(script string) []Intent {
	var out []Intent
	for _, code := range strings.Split(script, ",") {
		if strings.TrimSpace(code) == "" {
			continue
		}
		out = append(out, Parse(DeviceScript, code))
	}
	return out
}
