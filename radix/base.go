package radix

// Base is a numeral base.
type Base int

// Bases
const (
	Decimal Base = iota
	Binary
	Octal
	Hex
)

var bases = []Base{Decimal, Binary, Octal, Hex}

// Name returns the name used in error messages.
func (b Base) Name() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Hex:
		return "hexadecimal"
	default:
		return "decimal"
	}
}

// Prefix returns the canonical prefix. Decimal has none.
func (b Base) Prefix() string {
	switch b {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	case Hex:
		return "0x"
	default:
		return ""
	}
}

// DigitBits returns the number of bits a single digit holds. Decimal digits
// do not map to a whole number of bits and return 1, the granularity used
// when rounding decimal output.
func (b Base) DigitBits() int {
	switch b {
	case Octal:
		return 3
	case Hex:
		return 4
	default:
		return 1
	}
}

// GroupSize returns how many characters go between separators.
func (b Base) GroupSize() int {
	switch b {
	case Binary:
		return 8
	case Octal, Hex:
		return 2
	default:
		return 3
	}
}

// DefaultSeparator returns the separator used when none was given.
func (b Base) DefaultSeparator() string {
	if b == Decimal {
		return ","
	}

	return " "
}

// String implements fmt.Stringer.
func (b Base) String() string {
	switch b {
	case Hex:
		return "hex"
	default:
		return b.Name()
	}
}

// ParseBase parses the String form of a base.
func ParseBase(s string) (b Base, err error) {
	for _, base := range bases {
		if base.String() == s {
			return base, nil
		}
	}

	return Decimal, Error.New("unknown base %q", s)
}

// ReadMode selects the base tokens are read in.
type ReadMode int

// Read Modes
const (
	// ReadAuto picks the base of every token from its prefix or digits.
	ReadAuto ReadMode = iota
	ReadBinary
	ReadOctal
	ReadDecimal
	ReadHex
)

// String implements fmt.Stringer.
func (m ReadMode) String() string {
	if b, ok := m.Base(); ok {
		return b.String()
	}

	return "auto"
}

// Base returns the fixed base of the mode. ok is false for ReadAuto.
func (m ReadMode) Base() (b Base, ok bool) {
	switch m {
	case ReadBinary:
		return Binary, true
	case ReadOctal:
		return Octal, true
	case ReadDecimal:
		return Decimal, true
	case ReadHex:
		return Hex, true
	}

	return Decimal, false
}

// ReadBase returns the ReadMode with the fixed base b.
func ReadBase(b Base) ReadMode {
	switch b {
	case Binary:
		return ReadBinary
	case Octal:
		return ReadOctal
	case Hex:
		return ReadHex
	default:
		return ReadDecimal
	}
}

// ParseReadMode parses the String form of a read mode.
func ParseReadMode(s string) (m ReadMode, err error) {
	if s == ReadAuto.String() {
		return ReadAuto, nil
	}

	b, err := ParseBase(s)
	if err != nil {
		return ReadAuto, Error.New("unknown read mode %q", s)
	}

	return ReadBase(b), nil
}

// WriteMode selects the base tokens are written in. Upper only affects Hex.
type WriteMode struct {
	Base  Base
	Upper bool
}

// WidthKind is the kind of Width.
type WidthKind int

// Width Kinds
const (
	WidthUnfixed WidthKind = iota
	WidthRoundUp
	WidthFixed
)

// Width sets the number of bits a decoded value is padded to. Bytes is only
// used by WidthFixed.
type Width struct {
	Kind  WidthKind
	Bytes int
}

// Unfixed pads to a whole number of output digits.
func Unfixed() Width {
	return Width{Kind: WidthUnfixed}
}

// RoundUp pads to a whole number of bytes (6 bit bytes for octal).
func RoundUp() Width {
	return Width{Kind: WidthRoundUp}
}

// Fixed pads to exactly n bytes (6 bit bytes for octal).
func Fixed(n int) Width {
	return Width{Kind: WidthFixed, Bytes: n}
}

// Bits returns the length a value of minimal bits is padded to when written
// in base b.
func (w Width) Bits(minimal int, b Base) (n int, err error) {
	switch w.Kind {
	case WidthUnfixed:
		return roundUp(minimal, b.DigitBits()), nil
	case WidthRoundUp:
		switch b {
		case Binary, Hex:
			return roundUp(minimal, 8), nil
		case Octal:
			return roundUp(minimal, 6), nil
		default:
			return minimal, nil
		}
	case WidthFixed:
		if w.Bytes < 0 {
			return 0, Error.New("invalid width: %d", w.Bytes)
		}

		switch b {
		case Binary, Hex:
			return w.Bytes * 8, nil
		case Octal:
			return w.Bytes * 6, nil
		default:
			return minimal, nil
		}
	}

	return 0, Error.New("unknown width kind: %d", w.Kind)
}

func roundUp(n, multiple int) int {
	if r := n % multiple; r != 0 {
		return n + multiple - r
	}

	return n
}

// SeparatorKind is the kind of Separator.
type SeparatorKind int

// Separator Kinds
const (
	SeparatorNone SeparatorKind = iota
	SeparatorDefault
	SeparatorLiteral
)

// Separator is the text written between digit groups. A SeparatorDefault is
// resolved to the default of the output base the first time a Converter
// runs.
type Separator struct {
	Kind SeparatorKind
	Text string
}

// NoSeparator writes digits without separators.
func NoSeparator() Separator {
	return Separator{Kind: SeparatorNone}
}

// DefaultSeparator defers the choice to the output base.
func DefaultSeparator() Separator {
	return Separator{Kind: SeparatorDefault}
}

// Literal separates digit groups with text.
func Literal(text string) Separator {
	return Separator{Kind: SeparatorLiteral, Text: text}
}

// Resolve replaces a SeparatorDefault with the default literal for b.
func (s *Separator) Resolve(b Base) {
	if s.Kind == SeparatorDefault {
		*s = Literal(b.DefaultSeparator())
	}
}

// For returns the text to write between groups in base b.
func (s Separator) For(b Base) string {
	switch s.Kind {
	case SeparatorDefault:
		return b.DefaultSeparator()
	case SeparatorLiteral:
		return s.Text
	default:
		return ""
	}
}

// Schema is the configuration shared by a Decoder, Encoder and Converter.
type Schema struct {
	Read      ReadMode
	Write     WriteMode
	Width     Width
	Separator Separator

	Signed bool
	Prefix bool
}

// DefaultSchema reads any base and writes upper case hexadecimal with a
// prefix, unsigned, without separators.
func DefaultSchema() Schema {
	return Schema{
		Read: ReadAuto,
		Write: WriteMode{
			Base:  Hex,
			Upper: true,
		},
		Width:     Unfixed(),
		Separator: NoSeparator(),
		Prefix:    true,
	}
}
