// Package radix converts numeral tokens between binary, octal, decimal and
// hexadecimal without a fixed width integer.
//
// A conversion has two stages joined by a bitseq.Seq:
//
//  token -> Decoder -> bitseq.Seq -> Encoder -> string
//
// Decoding
//
// The Decoder strips an optional leading '-', resolves the input base (the
// ReadAuto mode picks it from a 0b, 0x or 0o prefix, then from the presence
// of hex letters, then falls back to decimal) and expands every digit to
// bits:
//
//  | Base        | Prefix | Bits per digit     |
//  |-------------|--------|--------------------|
//  | binary      | 0b     | 1                  |
//  | octal       | 0o     | 3                  |
//  | hexadecimal | 0x     | 4                  |
//  | decimal     |        | (see package decimal) |
//
// Leading zero bits are trimmed and the result is then padded to the length
// required by the Width:
//
//  | Width   | binary   | octal    | hexadecimal | decimal |
//  |---------|----------|----------|-------------|---------|
//  | Unfixed | 1        | 3        | 4           | 1       |
//  | RoundUp | 8        | 6        | 8           | 1       |
//  | Fixed(n)| n*8 bits | n*6 bits | n*8 bits    | minimal |
//
// Unfixed and RoundUp round the length up to a multiple of the given number
// of bits. The column is picked by the output base, so Fixed(1) written as
// octal is two 3 bit digits. Fixed widths fail with ErrWidthOverflow when
// the value needs more bits than allowed.
//
// A negative decimal token (signed mode only) is negated with two's
// complement after padding, so the width decides where the sign bit is:
//
//  "-1" Fixed(1) -> 1111_1111
//
// Encoding
//
// The Encoder writes the prefix of the output base (if enabled) and the
// digits. Binary, octal and hexadecimal take 1, 3 or 4 bits per character
// from the most significant end. Decimal goes through package decimal, and
// in signed mode a set sign bit prints '-' followed by the magnitude.
//
// Separators are inserted between groups of characters counted from the
// least significant character: 3 for decimal, 2 for octal and hexadecimal, 8
// for binary.
//
// Errors
//
// All errors come from the Decoder and belong to the Error class. Message
// returns the bare text of an error, for example
// "Character a not allowed in decimal numbers".
package radix
