// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"seqalign/internal/engine"
	"seqalign/internal/jsonlutil"
	"seqalign/internal/output"
)

// startJSONL streams each engine.Result as one JSON line (v1).
func startJSONL(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return jsonlutil.Start[engine.Result](out, bufSize,
		func(enc *json.Encoder, r engine.Result) error {
			return enc.Encode(output.ToAPIAlignment(r))
		},
		IsBrokenPipe,
	)
}
