package main

import (
	"fmt"
	"os"

	"fixint.lol/chk"
)

func main() {
	fh, err := os.Create("base10k.txt")
	if chk.E(err) {
		panic(err)
	}
	defer fh.Close()
	for i := range 10000 {
		fmt.Fprintf(fh, "%04d", i)
	}
}
