// Package log exposes the level printers of the process logger under one
// letter names, so a call site reads log.I.F("built %s", t).
package log

import (
	"fixint.lol/lol"
)

var (
	// F is for errors the process cannot continue after.
	F = lol.Main.Log.F
	E = lol.Main.Log.E
	W = lol.Main.Log.W
	I = lol.Main.Log.I
	D = lol.Main.Log.D
	// T is for per shard and per key detail, off unless asked for.
	T = lol.Main.Log.T
)
