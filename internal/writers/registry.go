// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"seqalign/internal/engine"
)

// BufferedWriter renders a complete, already ordered result list.
type BufferedWriter func(w io.Writer, list []engine.Result, opt Options) error

// StreamWriter renders results as they arrive.
type StreamWriter func(w io.Writer, in <-chan engine.Result, opt Options) error

// Writer registries (format → handler). Register in init() blocks.
var (
	bufferedWriters = map[string]BufferedWriter{}
	streamWriters   = map[string]StreamWriter{}
)

// Register installs the handlers for a format (idempotent last-wins).
// stream may be nil for formats that need the whole list (like json).
func Register(format string, buffered BufferedWriter, stream StreamWriter) {
	bufferedWriters[format] = buffered
	if stream != nil {
		streamWriters[format] = stream
	} else {
		delete(streamWriters, format)
	}
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(bufferedWriters))
	for f := range bufferedWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteResults dispatches a buffered write.
func WriteResults(format string, w io.Writer, list []engine.Result, opt Options) error {
	fn, ok := bufferedWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, opt)
}

func streamFor(format string) (StreamWriter, bool) {
	fn, ok := streamWriters[format]
	return fn, ok
}
