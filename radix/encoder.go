package radix

import (
	"strings"

	"github.com/ryann66/hex/bitseq"
	"github.com/ryann66/hex/decimal"
)

const (
	upperDigits = "0123456789ABCDEF"
	lowerDigits = "0123456789abcdef"
)

// Encoder formats bit sequences.
type Encoder struct {
	schema Schema
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema) *Encoder {
	return &Encoder{
		schema: schema,
	}
}

// Encode formats bits in the output base.
//
// NOTE: In signed mode a negative value written as decimal is negated in
// place.
func (e *Encoder) Encode(bits *bitseq.Seq) string {
	base := e.schema.Write.Base
	sep := e.schema.Separator.For(base)

	var sb strings.Builder

	if e.schema.Prefix {
		sb.WriteString(base.Prefix())
	}

	if len(*bits) == 0 {
		sb.WriteByte('0')

		return sb.String()
	}

	if base == Decimal {
		if e.schema.Signed && bits.Sign() {
			sb.WriteByte('-')
			bits.Negate()
		}

		sb.WriteString(decimal.FromBits(*bits).Group(sep, base.GroupSize()))

		return sb.String()
	}

	alphabet := upperDigits
	if base == Hex && !e.schema.Write.Upper {
		alphabet = lowerDigits
	}

	width := base.DigitBits()
	group := base.GroupSize()

	// A short trailing chunk is not written.
	chars := len(*bits) / width

	for i := 0; i < chars; i++ {
		if i > 0 && sep != "" && (chars-i)%group == 0 {
			sb.WriteString(sep)
		}

		v := 0
		for _, bit := range (*bits)[i*width : (i+1)*width] {
			v <<= 1
			if bit {
				v |= 1
			}
		}

		sb.WriteByte(alphabet[v])
	}

	return sb.String()
}
