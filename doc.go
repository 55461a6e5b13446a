// Package cthex implements constant-time hexadecimal encoding and
// decoding.
//
// The package is close to a drop-in replacement for encoding/hex.
// The important difference is that none of the conversions branch
// on, or index memory by, the data being converted: the instruction
// and memory-access sequence is the same for every input of a given
// length. This matters when the decoded data is secret, because the
// timing of a table-driven or branching parser can leak information
// about the bytes it accepts or rejects.
//
// Values are computed by turning range checks into 0/1 predicates
// and arithmetic masks, then selecting among candidate offsets with
// multiplies and adds. Compilers lower this to straight-line
// arithmetic and conditional moves rather than jumps.
//
// The error values are shared with encoding/hex so that callers can
// switch between the two packages without changing their error
// handling.
package cthex
