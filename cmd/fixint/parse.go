package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"fixint.lol"
	"fixint.lol/chk"
	"fixint.lol/interrupt"
	"fixint.lol/log"
	"fixint.lol/units"
)

// guard keeps the table from being released under a lookup: release waits for
// lookups in flight and nothing is looked up after it.
type guard struct {
	sync.RWMutex
	p      fixint.Parser
	t      fixint.Table
	closed bool
}

func (g *guard) with(fn func(p fixint.Parser)) (ok bool) {
	g.RLock()
	defer g.RUnlock()
	if g.closed {
		return
	}
	fn(g.p)
	return true
}

func (g *guard) release() {
	g.Lock()
	defer g.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	chk.E(g.t.Release())
}

func parse(p fixint.Parser, t fixint.Table, cmd *parseCmd) (code int) {
	g := &guard{p: p, t: t}
	interrupt.AddHandler(g.release)
	interrupt.Listener()
	out := bufio.NewWriter(os.Stdout)
	finished := make(chan int, 1)
	go func() {
		var failed int
		each := func(s string) bool {
			return g.with(func(p fixint.Parser) {
				if !parseOne(out, p, s, cmd.Strict) {
					failed++
				}
			})
		}
		if len(cmd.Values) > 0 {
			for _, s := range cmd.Values {
				if !each(s) {
					break
				}
			}
		} else {
			chk.E(scanLines(os.Stdin, each))
		}
		if failed > 0 {
			finished <- 1
			return
		}
		finished <- 0
	}()
	select {
	case code = <-finished:
	case <-interrupt.Done():
		code = 130
	}
	interrupt.Request()
	interrupt.Wait()
	chk.E(out.Flush())
	return
}

func parseOne(out io.Writer, p fixint.Parser, s string, strict bool) (ok bool) {
	if !strict {
		_, _ = fmt.Fprintf(out, "%q = %d\n", s, p.ParseString(s))
		return true
	}
	v, err := p.ParseStrict([]byte(s))
	if err != nil {
		log.W.Ln(err)
		_, _ = fmt.Fprintf(out, "%q invalid\n", s)
		return
	}
	_, _ = fmt.Fprintf(out, "%q = %d\n", s, v)
	return true
}

// scanLines calls fn with each line of r, without the line ending, until fn
// returns false.
func scanLines(r io.Reader, fn func(s string) bool) (err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*units.KiB), units.MiB)
	for sc.Scan() {
		if !fn(strings.TrimSuffix(sc.Text(), "\r")) {
			return
		}
	}
	return sc.Err()
}
