package main

import (
	"bufio"
	"io"

	"lukechampine.com/frand"

	"fixint.lol/chk"
	"fixint.lol/ints"
)

func gen(w io.Writer, cmd *genCmd) (code int) {
	out := bufio.NewWriter(w)
	defer func() { chk.E(out.Flush()) }()
	b := make([]byte, 0, ints.FieldWidth+1)
	var err error
	for range cmd.N {
		n := ints.New(frand.Intn(ints.MaxField + 1))
		// room for the sign is left below 10^7
		plus := cmd.Plus && n.Uint64() < 10000000
		if b, err = n.AppendField(b[:0], plus); chk.E(err) {
			return 1
		}
		b = append(b, '\n')
		_, _ = out.Write(b)
	}
	return
}
