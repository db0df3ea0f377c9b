package radix_test

import (
	"strconv"

	"github.com/ryann66/hex/bitseq"
)

// bitsOf returns the minimal sequence for v. Zero is the empty sequence.
func bitsOf(v uint64) bitseq.Seq {
	s := bitseq.Seq{}
	if v == 0 {
		return s
	}

	for _, c := range strconv.FormatUint(v, 2) {
		s = append(s, c == '1')
	}

	return s
}
