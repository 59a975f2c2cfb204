// Package cpu implements the register bank of the HP-35 processor.
//
// The bank holds seven 14-nibble registers. A holds the value as keyed in,
// B is the display mask for A, and C (the X register) holds the canonical
// form of A and B: a single significant digit ahead of the point, and a
// negative exponent stored as its complement from 100. D, E and F are the
// remaining stack registers and M is scratch.
//
// A State is not safe for concurrent use.
package cpu
