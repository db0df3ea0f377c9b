// Package bitseq provides the bit sequence shared by the radix decoder and
// encoder.
//
// A sequence is an ordered run of binary digits with the most significant
// digit at index 0:
//
//  value 11 -> Seq{true, false, true, true}
//
// The length of a sequence is the number of digits it holds, including any
// leading zeroes a caller padded it with. The empty sequence is zero.
//
// Signed values use two's complement over the full length of the sequence,
// so the width a sequence is padded to determines which digit is the sign
// bit:
//
//  -1 at 8 bits -> 1111_1111
//  -2 at 8 bits -> 1111_1110
//
// Negate operates in place. Sequences are not safe for concurrent mutation
// and are not meant to be shared between conversions.
package bitseq
