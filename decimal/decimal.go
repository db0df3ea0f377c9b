package decimal

import (
	"strings"

	"github.com/ryann66/hex/bitseq"
)

// Digits is a non-negative base 10 number as ASCII digits, most significant
// first. Every element must be in '0'..'9'.
type Digits []byte

// IsEven reports whether the number is even. Zero is even.
func (d Digits) IsEven() bool {
	if len(d) == 0 {
		return true
	}

	return (d[len(d)-1]-'0')%2 == 0
}

// Halve divides the number by two in place, discarding the remainder.
func (d *Digits) Halve() {
	digits := *d

	carry := false
	for i, c := range digits {
		v := c - '0'
		if carry {
			v += 10
		}

		carry = v%2 == 1
		digits[i] = '0' + v/2
	}

	d.trim()
}

// Decrement subtracts one in place. Decrementing zero leaves zero.
func (d *Digits) Decrement() {
	digits := *d

	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != '0' {
			digits[i]--
			break
		}

		digits[i] = '9'
	}

	d.trim()
}

// Double multiplies the number by two in place.
func (d *Digits) Double() {
	digits := *d

	carry := false
	for i := len(digits) - 1; i >= 0; i-- {
		v := (digits[i] - '0') * 2
		if carry {
			v++
		}

		carry = v >= 10
		digits[i] = '0' + v%10
	}

	if carry {
		d.prepend('1')
	}
}

// Increment adds one in place.
func (d *Digits) Increment() {
	digits := *d

	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			return
		}

		digits[i] = '0'
	}

	d.prepend('1')
}

func (d *Digits) prepend(c byte) {
	*d = append(Digits{c}, *d...)
}

func (d *Digits) trim() {
	digits := *d

	i := 0
	for i < len(digits) && digits[i] == '0' {
		i++
	}

	*d = digits[i:]
}

type operation int

const (
	divide operation = iota
	subtract
)

// ToBits returns the minimal binary form of d. The digits are consumed: d is
// zero afterwards.
func ToBits(d Digits) bitseq.Seq {
	var ops []operation

	for len(d) > 0 {
		if d.IsEven() {
			d.Halve()
			ops = append(ops, divide)
		} else {
			d.Decrement()
			ops = append(ops, subtract)
		}
	}

	bits := bitseq.Seq{}

	for i := len(ops) - 1; i >= 0; i-- {
		switch ops[i] {
		case divide:
			bits = append(bits, false)
		case subtract:
			if len(bits) > 0 {
				bits = bits[:len(bits)-1]
			}

			bits = append(bits, true)
		}
	}

	return bits.Trim()
}

// FromBits returns the base 10 digits of s read as an unsigned number.
// Leading zero bits do not produce leading zero digits; zero is empty.
func FromBits(s bitseq.Seq) Digits {
	acc := Digits{}

	for _, bit := range s {
		acc.Double()
		if bit {
			acc.Increment()
		}
	}

	return acc
}

// Group renders the digits with sep between every size digits counted from
// the least significant digit. Zero renders as "0".
func (d Digits) Group(sep string, size int) string {
	if len(d) == 0 {
		return "0"
	}

	var sb strings.Builder

	for i, c := range d {
		if i > 0 && sep != "" && size > 0 && (len(d)-i)%size == 0 {
			sb.WriteString(sep)
		}

		sb.WriteByte(c)
	}

	return sb.String()
}

// String returns the digits with no grouping.
func (d Digits) String() string {
	return d.Group("", 0)
}
