package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestRunArgs(t *testing.T) {
	type TC struct {
		Args   []string
		Output string
		Code   int
		Mark   error
	}

	tcs := []TC{
		{
			Args:   []string{"255"},
			Output: "0xFF\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"255", "0b101", "0o17", "ab"},
			Output: "0xFF\n0x5\n0xF\n0xAB\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-d", "0xff"},
			Output: "255\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-xl", "255"},
			Output: "0xff\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-n", "-b", "5"},
			Output: "101\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-b", "-d", "10"},
			Output: "10\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-d", "-b", "2"},
			Output: "0b10\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-X", "10"},
			Output: "0x10\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-X", "-F", "10"},
			Output: "0xA\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-r", "1"},
			Output: "0x01\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-w", "2", "1"},
			Output: "0x0001\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-w=2", "-f", "1"},
			Output: "0x1\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-d", "-c", "1234567"},
			Output: "1,234,567\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-d", "--separator=.", "1234567"},
			Output: "1.234.567\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-d", "-c", "-t", "1234567"},
			Output: "1234567\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-s", "-w=1", "-5"},
			Output: "0xFB\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-s", "-d", "0xFB"},
			Output: "-5\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-s", "-w=1", "--", "-1"},
			Output: "0xFF\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-1"},
			Output: "Error! Negative numbers not allowed in unsigned mode\n",
			Code:   1,
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-s", "-0x1"},
			Output: "Error! - operator is only allowed with decimal numbers\n",
			Code:   1,
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"12", "zz"},
			Output: "Error! Character z not allowed in decimal numbers\n",
			Code:   1,
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-B", "102"},
			Output: "Error! Character 2 not allowed in binary numbers\n",
			Code:   1,
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-w=1", "256"},
			Output: "Error! Number unrepresentable in fixed width\n",
			Code:   1,
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"--separator=", "1"},
			Output: "Error! Empty separator!\n",
			Code:   1,
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-s", "-xu", "-w=1", "-1"},
			Output: "0xFF\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-xl", "-xu", "171"},
			Output: "0xAB\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"--", "-xu"},
			Output: "Error! Negative numbers not allowed in unsigned mode\n",
			Code:   1,
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-c=", "1"},
			Output: "Error! Empty separator!\n",
			Code:   1,
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-d", "-c=_", "1234567"},
			Output: "1_234_567\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-v"},
			Output: fmt.Sprintf("Hex v%s\n", version),
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		tc := tc

		t.Run(fmt.Sprintf("[%d]%s", i, strings.Join(tc.Args, " ")), func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tc.Args, strings.NewReader(""), &stdout, &stderr)
			t.Logf("stderr: %s\n", spew.Sdump(stderr.String()))

			require.Equal(t, tc.Output, stdout.String(), tc.Mark)
			require.Equal(t, tc.Code, code, tc.Mark)
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	tcs := [][]string{
		{"-q"},
		{"--nope"},
		{"-w"},
		{"-w=x", "1"},
	}

	for i, args := range tcs {
		args := args

		t.Run(fmt.Sprintf("[%d]%s", i, strings.Join(args, " ")), func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(args, strings.NewReader(""), &stdout, &stderr)
			require.Equal(t, 1, code)
			require.True(t, strings.HasPrefix(stdout.String(), "Error! "), stdout.String())
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-h"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "Usage: hex <options> <params>")
	require.Contains(t, stdout.String(), "--from-binary")
	require.Contains(t, stdout.String(), `[="sep"]`)
	require.NotContains(t, stdout.String(), separatorDefault)
	require.NotContains(t, stdout.String(), "\x00")

	// Descriptions start in one column.
	column := func(flag, usage string) int {
		for _, line := range strings.Split(stdout.String(), "\n") {
			if strings.Contains(line, flag) {
				return strings.Index(line, usage)
			}
		}

		return -1
	}

	binary := column("--from-binary", "read input as binary")
	require.Positive(t, binary)
	require.Equal(t, binary, column("--separator", "separate digit groups"))
	require.Equal(t, binary, column("--no-separator", "do not separate digit groups"))
}

func TestRunStdin(t *testing.T) {
	type TC struct {
		Args   []string
		Input  string
		Output string
		Code   int
		Mark   error
	}

	tcs := []TC{
		{
			Input:  "255\n  0x10 \n\n",
			Output: "0xFF\n0x10\n0x0\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "1\n2",
			Output: "0x1\n0x2\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"-d", "-c"},
			Input:  "0xFFFF\n0xFFFFFF\n",
			Output: "65,535\n16,777,215\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "1\nxyz\n2\n",
			Output: "0x1\nError! Character x not allowed in decimal numbers\n",
			Code:   1,
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "",
			Output: "",
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		tc := tc

		t.Run(fmt.Sprintf("[%d]%q", i, tc.Input), func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tc.Args, strings.NewReader(tc.Input), &stdout, &stderr)

			require.Equal(t, tc.Output, stdout.String(), tc.Mark)
			require.Equal(t, tc.Code, code, tc.Mark)
		})
	}
}

func TestRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("write: decimal\ngroup: true\n"), 0o600))

	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", path, "1000"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "1,000\n", stdout.String())

	stdout.Reset()

	code = run([]string{"--config", path, "-x", "-t", "1000"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "0x3E8\n", stdout.String())

	stdout.Reset()

	t.Setenv("HEX_CONFIG", path)

	code = run([]string{"1000000"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "1,000,000\n", stdout.String())
}

func TestRunConfigErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "hex.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: 2\nround: true\n"), 0o600))

	toml := filepath.Join(dir, "hex.toml")
	require.NoError(t, os.WriteFile(toml, []byte("write = \"decimal\"\n"), 0o600))

	for i, path := range []string{bad, filepath.Join(dir, "missing.yaml"), toml} {
		path := path

		t.Run(fmt.Sprintf("[%d]%s", i, filepath.Base(path)), func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run([]string{"--config", path, "1"}, strings.NewReader(""), &stdout, &stderr)
			require.Equal(t, 1, code)
			require.True(t, strings.HasPrefix(stdout.String(), "Error! config: "), stdout.String())
		})
	}
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--verbose", "1"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "0x1\n", stdout.String())
	require.Contains(t, stderr.String(), `"msg":"converted"`)

	stderr.Reset()

	code = run([]string{"1"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Empty(t, stderr.String())
}
