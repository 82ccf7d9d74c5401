// Package pipeline aligns every record of one or more FASTA files against a
// single profile. All workers share one read-only score.Scheme.
package pipeline
