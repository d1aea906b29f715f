package main

import (
	"fmt"
	"strconv"
	"time"

	"lukechampine.com/frand"

	"fixint.lol"
	"fixint.lol/field"
	"fixint.lol/ints"
	"fixint.lol/log"
)

const benchFields = 1 << 16

func bench(p fixint.Parser, cmd *benchCmd) (code int) {
	if cmd.N < 1 {
		log.E.Ln("nothing to run")
		return 1
	}
	raw := make([][]byte, benchFields)
	fields := make([]field.T, benchFields)
	var err error
	for i := range raw {
		n := ints.New(frand.Intn(ints.MaxField + 1))
		if raw[i], err = n.AppendField(nil, false); err != nil {
			log.E.Ln(err)
			return 1
		}
		field.Normalize(&fields[i], raw[i])
	}
	var sink int64
	report := func(name string, fn func(i int)) {
		start := time.Now()
		for i := 0; i < cmd.N; i++ {
			fn(i & (benchFields - 1))
		}
		el := time.Since(start)
		fmt.Printf("%-12s %8.2f ns/op\n", name, float64(el.Nanoseconds())/float64(cmd.N))
	}
	report("Parse", func(i int) { sink += int64(p.Parse(&fields[i])) })
	report("ParseBytes", func(i int) { sink += int64(p.ParseBytes(raw[i])) })
	n := ints.New(0)
	report("Unmarshal", func(i int) {
		_, _ = n.Unmarshal(raw[i])
		sink += n.Int64()
	})
	report("Atoi", func(i int) {
		r := raw[i]
		j := 0
		for j < len(r) && r[j] == ' ' {
			j++
		}
		v, _ := strconv.Atoi(string(r[j:]))
		sink += int64(v)
	})
	log.T.Ln("checksum", sink)
	return
}
