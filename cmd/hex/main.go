// Command hex converts numbers between binary, octal, decimal and
// hexadecimal of any length.
//
// Numbers are taken from the command line or, when none are given, one per
// line from stdin. See hex --help for the options.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/calebcase/oops"

	"github.com/ryann66/hex/config"
	"github.com/ryann66/hex/radix"
)

// version is overridden at link time.
var version = "1.0.0"

// maxLine bounds a single line read from stdin.
const maxLine = 16 << 20

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code. Conversion results and
// user facing errors go to stdout; diagnostics go to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, fs, err := parseArgs(args)
	if err != nil {
		fail(stdout, err)
		return 1
	}

	logger := newLogger(stderr, o.verbose)

	if o.help {
		printHelp(stdout, fs)
		return 0
	}

	if o.version {
		fmt.Fprintf(stdout, "Hex v%s\n", version)
		return 0
	}

	schema, err := buildSchema(logger, o)
	if err != nil {
		logger.Debug("invalid configuration", "error", fmt.Sprintf("%+v", err))
		fail(stdout, err)
		return 1
	}

	logger.Debug("schema",
		"read", schema.Read.String(),
		"write", schema.Write.Base.String(),
		"upper", schema.Write.Upper,
		"signed", schema.Signed,
		"prefix", schema.Prefix,
	)

	converter := radix.NewConverter(schema)

	if len(o.tokens) > 0 {
		return convertArgs(logger, converter, o.tokens, stdout)
	}

	return convertLines(logger, converter, stdin, stdout)
}

// buildSchema layers the config file and then the flags over the defaults.
func buildSchema(logger *slog.Logger, o *options) (*radix.Schema, error) {
	schema := radix.DefaultSchema()

	if path := config.Path(o.config); path != "" {
		logger.Debug("loading config", "path", path)

		file, err := config.Load(path)
		if err != nil {
			return nil, err
		}

		err = file.Apply(&schema)
		if err != nil {
			return nil, err
		}
	}

	err := o.apply(&schema)
	if err != nil {
		return nil, err
	}

	return &schema, nil
}

// convertArgs converts every token before printing anything, so a bad token
// produces only the error.
func convertArgs(logger *slog.Logger, converter *radix.Converter, tokens []string, stdout io.Writer) int {
	results := make([]string, 0, len(tokens))

	for _, token := range tokens {
		out, err := converter.Convert(token)
		if err != nil {
			logger.Debug("conversion failed", "token", token, "error", fmt.Sprintf("%+v", err))
			fail(stdout, err)
			return 1
		}

		logger.Debug("converted", "token", token, "result", out)
		results = append(results, out)
	}

	for _, out := range results {
		fmt.Fprintln(stdout, out)
	}

	return 0
}

// convertLines converts stdin line by line until EOF. A bad line ends the
// loop.
func convertLines(logger *slog.Logger, converter *radix.Converter, stdin io.Reader, stdout io.Writer) int {
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 4096), maxLine)

	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())

		out, err := converter.Convert(token)
		if err != nil {
			logger.Debug("conversion failed", "token", token, "error", fmt.Sprintf("%+v", err))
			fail(stdout, err)
			return 1
		}

		fmt.Fprintln(stdout, out)
	}

	err := scanner.Err()
	if err != nil {
		logger.Error("reading stdin", "error", fmt.Sprintf("%+v", oops.Trace(err)))
		return 1
	}

	return 0
}

// fail reports err on stdout. Conversion and usage errors are printed bare;
// anything else keeps its class and context.
func fail(stdout io.Writer, err error) {
	msg := err.Error()
	if radix.Error.Has(err) || Error.Has(err) {
		msg = radix.Message(err)
	}

	fmt.Fprintf(stdout, "Error! %s\n", msg)
}
