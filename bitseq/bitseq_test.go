package bitseq_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/ryann66/hex/bitseq"
)

// parse builds a sequence from '0' and '1' characters, ignoring '_'.
func parse(t *testing.T, digits string) bitseq.Seq {
	t.Helper()

	s := bitseq.Seq{}

	for _, c := range digits {
		switch c {
		case '0':
			s = append(s, false)
		case '1':
			s = append(s, true)
		case '_':
		default:
			t.Fatalf("bad digit %q in %q", c, digits)
		}
	}

	return s
}

func TestNegate(t *testing.T) {
	type TC struct {
		Input  string
		Output string
		Mark   error
	}

	tcs := []TC{
		{
			Input:  "",
			Output: "",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0000_0000",
			Output: "0000_0000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0000_0001",
			Output: "1111_1111",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0000_0010",
			Output: "1111_1110",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "1000_0000",
			Output: "1000_0000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0111_1111",
			Output: "1000_0001",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "1",
			Output: "1",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0000_0011_0001_0101",
			Output: "1111_1100_1110_1011",
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			s := parse(t, tc.Input)
			s.Negate()

			t.Logf("Seq: %s\n", spew.Sdump(s))

			require.Equal(t, parse(t, tc.Output), s, tc.Mark)

			s.Negate()
			require.Equal(t, parse(t, tc.Input), s, tc.Mark)
		})
	}
}

func TestNegateMatchesBig(t *testing.T) {
	const width = 16

	modulus := new(big.Int).Lsh(big.NewInt(1), width)

	for _, v := range []int64{1, 2, 3, 7, 100, 255, 256, 4088, 32767, 32768, 65535} {
		want := new(big.Int).Sub(modulus, big.NewInt(v))

		s := parse(t, big.NewInt(v).Text(2)).Pad(width)
		s.Negate()

		require.Len(t, s, width)
		require.Equal(t, parse(t, want.Text(2)).Pad(width), s, "v=%d", v)
	}
}

func TestTrimPad(t *testing.T) {
	s := parse(t, "0001_0110")

	trimmed := s.Trim()
	require.Equal(t, parse(t, "1_0110"), trimmed)
	require.Equal(t, parse(t, "0000_0001_0110"), trimmed.Pad(12))
	require.Equal(t, trimmed, trimmed.Pad(3))

	require.Empty(t, parse(t, "0000").Trim())
	require.Empty(t, bitseq.Seq{}.Trim())
	require.Equal(t, parse(t, "000"), bitseq.Seq{}.Pad(3))
}

func TestSign(t *testing.T) {
	require.False(t, bitseq.Seq{}.Sign())
	require.False(t, parse(t, "0111").Sign())
	require.True(t, parse(t, "1000").Sign())
}

func TestString(t *testing.T) {
	require.Equal(t, "", bitseq.Seq{}.String())
	require.Equal(t, "1011", parse(t, "1011").String())
	require.Equal(t, "00001011", parse(t, "1011").Pad(8).String())
}
