// internal/output/formats.go
package output

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)
