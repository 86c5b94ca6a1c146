// Package eltetrado reads molecular structure files in the two legacy
// textual conventions (fixed-column and tag/table-based), selects one
// experimental model and produces the normalized, strictly ordered residue
// sequence the downstream quadruplex analysis works on.
//
// The pipeline is: load the whole input into memory (transparently
// inflating gzip), sniff the format, parse to an ordered atom list plus a
// modification table, filter to the requested model and group atoms into
// residues. Pairing/stacking annotations produced by an external service
// are reconciled against the same residues by the dssr package.
package eltetrado
