package main

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/zeebo/errs"

	"github.com/ryann66/hex/config"
	"github.com/ryann66/hex/radix"
)

// Error is the error class for command line usage errors.
var Error = errs.Class("usage")

// separatorDefault is the value -c takes when given without one. It must not
// contain NUL: pflag uses NUL to align its usage columns.
const separatorDefault = "\x01default"

// shield marks arguments hidden from flag parsing.
const shield = "\x00"

var negativeNumber = regexp.MustCompile(`^-[0-9]`)

// options is the result of parsing the command line. Schema settings are
// recorded as actions in the order the flags were given so that they can be
// applied on top of a config file, with the last flag of a group winning.
type options struct {
	actions []func(*radix.Schema) error
	tokens  []string

	config  string
	verbose bool
	help    bool
	version bool
}

// apply runs the recorded actions against schema.
func (o *options) apply(schema *radix.Schema) error {
	for _, action := range o.actions {
		err := action(schema)
		if err != nil {
			return err
		}
	}

	return nil
}

// action is a pflag.Value that records a schema change when set.
type action struct {
	o   *options
	typ string
	fn  func(schema *radix.Schema, value string) error
}

func (a *action) String() string { return "" }

func (a *action) Type() string { return a.typ }

func (a *action) Set(value string) error {
	a.o.actions = append(a.o.actions, func(schema *radix.Schema) error {
		return a.fn(schema, value)
	})

	return nil
}

// switchVar registers a flag that takes no value.
func (o *options) switchVar(fs *pflag.FlagSet, name, short, usage string, fn func(schema *radix.Schema)) {
	a := &action{
		o:   o,
		typ: "bool",
		fn: func(schema *radix.Schema, _ string) error {
			fn(schema)
			return nil
		},
	}

	fs.VarPF(a, name, short, usage).NoOptDefVal = "true"
}

func newFlagSet(o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("hex", pflag.ContinueOnError)

	read := func(m radix.ReadMode) func(*radix.Schema) {
		return func(schema *radix.Schema) { schema.Read = m }
	}
	o.switchVar(fs, "from-binary", "B", "read input as binary", read(radix.ReadBinary))
	o.switchVar(fs, "from-decimal", "D", "read input as decimal", read(radix.ReadDecimal))
	o.switchVar(fs, "from-octal", "O", "read input as octal", read(radix.ReadOctal))
	o.switchVar(fs, "from-hex", "X", "read input as hexadecimal", read(radix.ReadHex))
	o.switchVar(fs, "from-any", "F", "detect the input base from its prefix (default)", read(radix.ReadAuto))

	write := func(b radix.Base) func(*radix.Schema) {
		return func(schema *radix.Schema) { schema.Write.Base = b }
	}
	o.switchVar(fs, "binary", "b", "write output in binary", write(radix.Binary))
	o.switchVar(fs, "decimal", "d", "write output in decimal", write(radix.Decimal))
	o.switchVar(fs, "octal", "o", "write output in octal", write(radix.Octal))
	o.switchVar(fs, "hex", "x", "write output in upper case hexadecimal (default)", func(schema *radix.Schema) {
		schema.Write = radix.WriteMode{Base: radix.Hex, Upper: true}
	})
	o.switchVar(fs, "lower", "l", "write hexadecimal in lower case", func(schema *radix.Schema) {
		schema.Write.Upper = false
	})

	o.switchVar(fs, "signed", "s", "two's complement mode; use '-' with decimals", func(schema *radix.Schema) {
		schema.Signed = true
	})
	o.switchVar(fs, "unsigned", "u", "unsigned mode (default)", func(schema *radix.Schema) {
		schema.Signed = false
	})

	fs.VarP(&action{
		o:   o,
		typ: "uint",
		fn: func(schema *radix.Schema, value string) error {
			n, err := strconv.ParseUint(value, 10, 31)
			if err != nil {
				return Error.New("Unrecognizable option: -w=%s", value)
			}

			schema.Width = radix.Fixed(int(n))

			return nil
		},
	}, "width", "w", "output width in bytes (6 bit bytes for octal)")
	o.switchVar(fs, "fit", "f", "use the fewest digits (default)", func(schema *radix.Schema) {
		schema.Width = radix.Unfixed()
	})
	o.switchVar(fs, "round", "r", "round the width up to whole bytes", func(schema *radix.Schema) {
		schema.Width = radix.RoundUp()
	})

	fs.VarPF(&action{
		o:   o,
		typ: "string",
		fn: func(schema *radix.Schema, value string) error {
			switch value {
			case separatorDefault:
				schema.Separator = radix.DefaultSeparator()
			case "":
				return Error.New("Empty separator!")
			default:
				schema.Separator = radix.Literal(value)
			}

			return nil
		},
	}, "separator", "c", "separate digit groups (default ',' for decimal and ' ' otherwise)").NoOptDefVal = separatorDefault
	o.switchVar(fs, "no-separator", "t", "do not separate digit groups (default)", func(schema *radix.Schema) {
		schema.Separator = radix.NoSeparator()
	})

	o.switchVar(fs, "prefix", "p", "write 0b, 0o and 0x prefixes (default)", func(schema *radix.Schema) {
		schema.Prefix = true
	})
	o.switchVar(fs, "no-prefix", "n", "omit prefixes", func(schema *radix.Schema) {
		schema.Prefix = false
	})

	fs.StringVar(&o.config, "config", "", "config file (default: $"+config.EnvVar+")")
	fs.BoolVar(&o.verbose, "verbose", false, "log debug information to stderr")
	fs.BoolVarP(&o.help, "help", "h", false, "show help")
	fs.BoolVarP(&o.version, "version", "v", false, "show version")

	return fs
}

// parseArgs parses the command line. Arguments that look like negative
// numbers are tokens rather than flags. Before "--", a bare -xu means -x and
// -c= means an explicit empty separator.
func parseArgs(args []string) (o *options, fs *pflag.FlagSet, err error) {
	o = &options{}
	fs = newFlagSet(o)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	shielded := make([]string, len(args))
	terminated := false
	for i, arg := range args {
		switch {
		case negativeNumber.MatchString(arg):
			arg = shield + arg
		case terminated:
		case arg == "--":
			terminated = true
		case arg == "-xu":
			arg = "-x"
		case arg == "-c=":
			arg = "--separator="
		}

		shielded[i] = arg
	}

	err = fs.Parse(shielded)
	if err != nil {
		return nil, nil, Error.Wrap(err)
	}

	for _, arg := range fs.Args() {
		o.tokens = append(o.tokens, strings.TrimPrefix(arg, shield))
	}

	return o, fs, nil
}

const helpText = `HEX
Tool for converting between different number types
Usage: hex <options> <params>
Can take many params at once or be left empty to read from stdin
Negative decimal params are taken as numbers, not options

Options:
%s`

// printHelp writes the help text. It replaces the -c sentinel with a display
// value, so fs must not be parsed again.
func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fs.Lookup("separator").NoOptDefVal = "sep"

	fmt.Fprintf(w, helpText, fs.FlagUsages())
}
