// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL schema for one pairwise alignment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	QueryID      string  `json:"query_id"`
	TargetID     string  `json:"target_id"`
	QueryLength  int     `json:"query_length"`
	TargetLength int     `json:"target_length"`
	Distance     int     `json:"distance"`
	Columns      int     `json:"columns"`
	Matches      int     `json:"matches"`
	Mismatches   int     `json:"mismatches"`
	Insertions   int     `json:"insertions"`
	Deletions    int     `json:"deletions"`
	Identity     float64 `json:"identity"`
	Top          string  `json:"top"`
	Track        string  `json:"track"`
	Bottom       string  `json:"bottom"`
	SourceFile   string  `json:"source_file,omitempty"`
	Description  string  `json:"target_description,omitempty"`
}
