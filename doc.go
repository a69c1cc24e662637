// Package mbe reads and writes the MBE binary tabular container
// format: a little-endian structural block of typed sheet rows
// paired with an out-of-line string pool addressed by absolute file
// offset.
//
// The package exposes exactly two operations on the wire format,
// Parse and Generate; everything else (Container, the CLI) is a
// convenience layered on top.
package mbe
