package scalar

import (
	"fmt"
	"strconv"
	"testing"

	"lukechampine.com/frand"
)

func chunk(s string) (c [Width]byte) {
	copy(c[:], s)
	return
}

func TestParse4(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int32
	}{
		{"0000", 0},
		{"0001", 1},
		{"1234", 1234},
		{"9999", 9999},
		{"   7", 7},
		{"  +7", 7},
		{"+123", 123},
		{"12  ", 12},
		{"1 2 ", 12},
		{" +1 ", 1},
		{"\t\n42", 42},
		{"    ", 0},
		{"   +", 0},
		{"++12", 0},
		{"1+23", 0},
		{"  -1", 0},
		{"-000", 0},
		{"12\t3", 0},
		{"12a4", 0},
		{"\x00123", 0},
		{"123\x00", 0},
	} {
		if got := Parse4(chunk(tc.in)); got != tc.want {
			t.Errorf("Parse4(%q) = %d, want %d", tc.in, got, tc.want)
		}
		if got := Parse4Bytes([]byte(tc.in)); got != tc.want {
			t.Errorf("Parse4Bytes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParse4AllPaddedValues(t *testing.T) {
	for n := range 10000 {
		for _, format := range []string{"%4d", "%04d", "+%03d", "%-4d"} {
			s := fmt.Sprintf(format, n)
			if len(s) != Width {
				continue
			}
			if got := Parse4(chunk(s)); got != int32(n) {
				t.Fatalf("Parse4(%q) = %d, want %d", s, got, n)
			}
		}
	}
}

func TestParse4Random(t *testing.T) {
	var c [Width]byte
	for range 1000000 {
		frand.Read(c[:])
		got := Parse4(c)
		if got < 0 || got > 9999 {
			t.Fatalf("Parse4(%q) = %d out of range", c[:], got)
		}
		if got != Parse4(c) {
			t.Fatalf("Parse4(%q) not deterministic", c[:])
		}
		// anything strconv accepts as a bare unsigned number must agree
		if n, err := strconv.ParseUint(string(c[:]), 10, 16); err == nil && int32(n) != got {
			t.Fatalf("Parse4(%q) = %d, strconv says %d", c[:], got, n)
		}
	}
}
