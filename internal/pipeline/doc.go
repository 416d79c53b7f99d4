// Package pipeline streams FASTA targets through an Aligner against a fixed
// set of queries, applies the cell budget and distance filter, and calls a
// visit callback in deterministic input order. The per-pair budget is
// enforced by the Aligner; Config.CellBudget bounds the matrices held by all
// workers together.
//
// The only contract to implement is Aligner. This keeps the pipeline
// swappable and testable.
package pipeline
