// Package errorf formats an error, logs it with the caller's location at a
// level and returns it.
package errorf

import (
	"fixint.lol/lol"
)

var (
	F = lol.Main.Errorf.F
	E = lol.Main.Errorf.E
	W = lol.Main.Errorf.W
	I = lol.Main.Errorf.I
	D = lol.Main.Errorf.D
	T = lol.Main.Errorf.T
)
