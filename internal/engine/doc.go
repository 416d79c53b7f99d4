// Package engine turns FASTA records into pairwise alignment results. It wraps
// core/align with the admission budget and residue checks; it never imports
// app, writers, cli, or pipeline. Keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
