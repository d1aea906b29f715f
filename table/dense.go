package table

import (
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// shards is how many ranges a dense fill is cut into; more shards than workers
// keeps the tail short when some cores are slower.
const shards = 256

// FillDense writes every key of the table, spreading the work over workers
// goroutines. It returns once all of them are done.
func (t *T[V]) FillDense(workers no) (err error) { return t.FillWindow(0, Size, workers) }

// FillWindow writes every key in [lo, hi) like FillRange, cut into shards that
// run on at most workers goroutines.
func (t *T[V]) FillWindow(lo, hi u64, workers no) (err error) {
	if hi > Size {
		hi = Size
	}
	if lo >= hi {
		return
	}
	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	step := (hi - lo + shards - 1) / shards
	start := time.Now()
	for from := lo; from < hi; from += step {
		to := min(from+step, hi)
		g.Go(func() error {
			t.FillRange(from, to)
			log.T.C(func() string {
				return "filled keys " + humanize.Comma(int64(from)) + ".." +
					humanize.Comma(int64(to))
			})
			return nil
		})
	}
	if err = g.Wait(); chk.E(err) {
		return
	}
	log.D.F("dense fill of %s keys on %d workers took %v",
		humanize.Comma(int64(hi-lo)), workers, time.Since(start))
	return
}
