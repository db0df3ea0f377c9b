// Package decimal provides arbitrary length base 10 arithmetic over strings
// of ASCII digits, just enough to move numbers between base 10 and binary
// without a fixed width integer.
//
// Digits are stored most significant first. The empty string is zero:
//
//  "4088" -> Digits{'4', '0', '8', '8'}
//
// Decoding
//
// ToBits converts base 10 to binary by halving. While the number is not
// zero, an even number is divided by two and an odd number has one
// subtracted. Each step is recorded:
//
//  11 -> subtract -> 10 -> divide -> 5 -> subtract -> 4 -> divide -> 2 -> divide -> 1 -> subtract -> 0
//
// Replaying the record from the last step to the first builds the bits most
// significant first. A divide shifts in a 0. A subtract replaces the 0 just
// shifted in with a 1. Two subtracts never follow each other because one
// less than an odd number is even, so a subtract always has a digit to
// replace (or an empty sequence when it is the first step replayed):
//
//  subtract -> 1
//  divide   -> 10
//  divide   -> 100
//  subtract -> 101
//  divide   -> 1010
//  subtract -> 1011
//
// Halving is a single pass from the most significant digit carrying the
// remainder forward. Subtracting one is a single pass from the least
// significant digit borrowing through zeroes. Both trim leading zeroes so
// the length of the digits is always the true magnitude. Each pass is linear
// in the number of digits which makes a full conversion quadratic.
//
// Encoding
//
// FromBits converts binary to base 10 by doubling. Starting from zero, for
// every bit from the most significant the accumulator is doubled and, if the
// bit is set, incremented. Both passes run from the least significant digit
// and prepend a '1' when a carry is left over.
package decimal
