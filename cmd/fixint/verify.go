package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"fixint.lol/alphabet"
	"fixint.lol/chk"
	"fixint.lol/config"
	"fixint.lol/field"
	"fixint.lol/log"
	"fixint.lol/table"
)

// verify builds the configured sparse table and a wide dense one over the key
// window, then checks they agree on every key a normalised field can produce
// inside the window.
func verify(cfg *config.C, cmd *verifyCmd) (code int) {
	lo, hi := cmd.Lo, min(cmd.Hi, table.Size)
	if lo >= hi {
		log.E.F("empty key window %d..%d", lo, hi)
		return 1
	}
	sparse, err := table.New[int16](table.WithAlphabet(alphabet.ByName(cfg.Alphabet)))
	if err != nil {
		log.F.F("cannot build the sparse table: %v", err)
		return 1
	}
	defer func() { chk.E(sparse.Release()) }()
	var dense *table.T[int32]
	if dense, err = table.Reserve[int32](); err != nil {
		log.F.F("cannot reserve the dense table: %v", err)
		return 1
	}
	defer func() { chk.E(dense.Release()) }()
	log.I.F("filling %s dense keys", humanize.Comma(int64(hi-lo)))
	if err = dense.FillWindow(lo, hi, cfg.Workers); chk.E(err) {
		return 1
	}
	window := func(yield func(uint32) bool) {
		for k := range table.Keys(alphabet.Reachable) {
			if uint64(k) >= lo && uint64(k) < hi && !yield(k) {
				return
			}
		}
	}
	checked, mismatched, diff := table.Compare(sparse, dense, window, cmd.Limit)
	for _, m := range diff {
		c := field.Chunk(m.Key)
		fmt.Printf("key %08x %q: sparse %d dense %d\n", m.Key, c[:], m.A, m.B)
	}
	fmt.Printf("%s reachable keys checked, %s mismatched\n",
		humanize.Comma(int64(checked)), humanize.Comma(int64(mismatched)))
	if mismatched > 0 {
		return 1
	}
	return
}
