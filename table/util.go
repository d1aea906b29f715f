package table

import (
	"fixint.lol/lol"
)

type (
	bo  = bool
	no  = int
	u32 = uint32
	u64 = uint64
)

var (
	log, chk = lol.Main.Log, lol.Main.Check
)
