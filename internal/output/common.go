package output

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tquery_id\ttarget_id\tquery_length\ttarget_length\tdistance\tcolumns\tmatches\tmismatches\tinsertions\tdeletions\tidentity"
