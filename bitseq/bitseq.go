package bitseq

import (
	"strings"
)

// Seq is a sequence of binary digits, most significant first.
type Seq []bool

// Negate replaces the value with its two's complement (complement every
// digit, then add one) in place. The empty sequence stays empty.
func (s *Seq) Negate() {
	bits := *s

	for i := range bits {
		bits[i] = !bits[i]
	}

	// Adding one flips digits from the least significant end up to and
	// including the first digit that becomes set.
	for i := len(bits) - 1; i >= 0; i-- {
		bits[i] = !bits[i]
		if bits[i] {
			break
		}
	}
}

// Trim returns s without its leading zeroes. The result shares storage with
// s.
func (s Seq) Trim() Seq {
	i := 0
	for i < len(s) && !s[i] {
		i++
	}

	return s[i:]
}

// Pad returns s left-padded with zeroes to length n. If s is already at least
// n digits long it is returned unchanged.
func (s Seq) Pad(n int) Seq {
	if len(s) >= n {
		return s
	}

	padded := make(Seq, n)
	copy(padded[n-len(s):], s)

	return padded
}

// Sign reports whether the most significant digit is set. In signed mode
// this is the two's complement sign bit.
func (s Seq) Sign() bool {
	return len(s) > 0 && s[0]
}

// String returns the digits of s as '0' and '1' characters.
func (s Seq) String() string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, bit := range s {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
