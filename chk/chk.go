// Package chk logs a non-nil error at a level and reports whether there was
// one, so a failed call is logged and branched on in one line:
//
//	if err = t.Release(); chk.E(err) {
//		return
//	}
package chk

import (
	"fixint.lol/lol"
)

var (
	F = lol.Main.Check.F
	E = lol.Main.Check.E
	W = lol.Main.Check.W
	I = lol.Main.Check.I
	D = lol.Main.Check.D
	T = lol.Main.Check.T
)
