package radix

import (
	"strings"

	"github.com/ryann66/hex/bitseq"
	"github.com/ryann66/hex/decimal"
)

// Decoder parses tokens into bit sequences.
type Decoder struct {
	schema Schema
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
	}
}

// Decode parses token. The returned sequence is padded according to the
// schema Width and, for negative decimal tokens, holds the two's complement.
func (d *Decoder) Decode(token string) (bits bitseq.Seq, err error) {
	defer Error.WrapP(&err)

	digits, negative := strings.CutPrefix(token, "-")

	base, digits, err := d.resolve(digits)
	if err != nil {
		return nil, err
	}

	if negative && !d.schema.Signed {
		return nil, ErrUnsignedNegative
	}
	if negative && base != Decimal {
		return nil, ErrNegativeBase
	}

	bits, err = expand(base, digits)
	if err != nil {
		return nil, err
	}

	bits = bits.Trim()

	length, err := d.schema.Width.Bits(len(bits), d.schema.Write.Base)
	if err != nil {
		return nil, err
	}
	if len(bits) > length {
		return nil, ErrWidthOverflow
	}

	bits = bits.Pad(length)

	if negative {
		bits.Negate()
	}

	return bits, nil
}

// resolve returns the base of digits and the digits with any prefix for that
// base removed.
func (d *Decoder) resolve(digits string) (Base, string, error) {
	if b, ok := d.schema.Read.Base(); ok {
		return b, strings.TrimPrefix(digits, b.Prefix()), nil
	}

	if d.schema.Read != ReadAuto {
		return Decimal, "", Error.New("unknown read mode: %d", d.schema.Read)
	}

	for _, b := range []Base{Binary, Hex, Octal} {
		if rest, ok := strings.CutPrefix(digits, b.Prefix()); ok {
			return b, rest, nil
		}
	}

	if strings.ContainsAny(digits, "abcdefABCDEF") {
		return Hex, digits, nil
	}

	return Decimal, digits, nil
}

// expand converts every digit to bits, most significant first.
func expand(base Base, digits string) (bits bitseq.Seq, err error) {
	if base == Decimal {
		for _, c := range digits {
			if c < '0' || c > '9' {
				return nil, &CharacterError{Char: c, Base: base}
			}
		}

		return decimal.ToBits(decimal.Digits(digits)), nil
	}

	width := base.DigitBits()
	bits = make(bitseq.Seq, 0, len(digits)*width)

	for _, c := range digits {
		v, ok := digitValue(c)
		if !ok || v >= 1<<uint(width) {
			return nil, &CharacterError{Char: c, Base: base}
		}

		for i := width - 1; i >= 0; i-- {
			bits = append(bits, v>>uint(i)&1 == 1)
		}
	}

	return bits, nil
}

// digitValue returns the value of a hexadecimal digit in either case.
func digitValue(c rune) (v int, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}

	return 0, false
}
