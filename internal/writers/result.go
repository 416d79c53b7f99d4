// internal/writers/result.go
package writers

import (
	"encoding/json"
	"io"

	"seqalign/internal/common"
	"seqalign/internal/engine"
	"seqalign/internal/output"
	"seqalign/internal/pretty"
)

// Options select and tune a result writer.
type Options struct {
	Format  string
	Sort    bool // buffer everything and emit in common.LessResult order
	Header  bool // tsv header row
	Pretty  pretty.Options
	BufSize int
}

func init() {
	Register(output.FormatText,
		func(w io.Writer, list []engine.Result, opt Options) error {
			return output.WriteText(w, list, opt.Pretty)
		},
		func(w io.Writer, in <-chan engine.Result, opt Options) error {
			return output.StreamText(w, in, opt.Pretty)
		})
	Register(output.FormatTSV,
		func(w io.Writer, list []engine.Result, opt Options) error {
			return output.WriteTSV(w, list, opt.Header)
		},
		func(w io.Writer, in <-chan engine.Result, opt Options) error {
			return output.StreamTSV(w, in, opt.Header)
		})
	Register(output.FormatJSON,
		func(w io.Writer, list []engine.Result, _ Options) error {
			return output.WriteJSON(w, list)
		},
		nil)
	Register(output.FormatJSONL,
		func(w io.Writer, list []engine.Result, _ Options) error {
			enc := json.NewEncoder(w)
			for _, r := range list {
				if err := enc.Encode(output.ToAPIAlignment(r)); err != nil {
					return err
				}
			}
			return nil
		},
		nil)
}

// StartResultWriter spins up a writer goroutine for engine.Result items.
// Close the returned channel when done and read exactly one value from the
// error channel. The goroutine keeps draining after a write error.
func StartResultWriter(out io.Writer, opt Options) (chan<- engine.Result, <-chan error) {
	if opt.BufSize <= 0 {
		opt.BufSize = 64
	}
	if opt.Format == output.FormatJSONL && !opt.Sort {
		return startJSONL(out, opt.BufSize)
	}

	in := make(chan engine.Result, opt.BufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if stream, ok := streamFor(opt.Format); ok && !opt.Sort {
			err = stream(out, in, opt)
		} else {
			var buf []engine.Result
			for r := range in {
				buf = append(buf, r)
			}
			if opt.Sort {
				common.SortResults(buf)
			}
			err = WriteResults(opt.Format, out, buf, opt)
		}
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}
