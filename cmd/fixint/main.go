// Command fixint builds a decimal field lookup table as configured by the
// environment and parses, verifies, benchmarks or generates fields with it.
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/alexflint/go-arg"
	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/profile"

	"fixint.lol"
	"fixint.lol/chk"
	"fixint.lol/config"
	"fixint.lol/log"
	"fixint.lol/lol"
	"fixint.lol/table"
)

type parseCmd struct {
	Strict bool     `arg:"-s,--strict" help:"reject malformed fields instead of reading them as 0"`
	Values []string `arg:"positional" help:"fields to parse; one per line from stdin when none are given"`
}

type verifyCmd struct {
	Lo    uint64 `arg:"--lo" default:"0" help:"first key of the dense window"`
	Hi    uint64 `arg:"--hi" default:"4294967296" help:"end of the dense window, exclusive"`
	Limit int    `arg:"--limit" default:"16" help:"how many mismatches to print"`
}

type benchCmd struct {
	N int `arg:"-n" default:"10000000" help:"lookups per run"`
}

type genCmd struct {
	N    int  `arg:"-n" default:"10" help:"how many fields"`
	Plus bool `arg:"-p,--plus" help:"write a '+' before values that leave room for it"`
}

type infoCmd struct {
	JSON bool `arg:"--json" help:"print the report as JSON"`
}

type runArgs struct {
	Parse  *parseCmd  `arg:"subcommand:parse" help:"parse fields"`
	Verify *verifyCmd `arg:"subcommand:verify" help:"check a sparse table against a dense one"`
	Bench  *benchCmd  `arg:"subcommand:bench" help:"time table lookups against strconv"`
	Gen    *genCmd    `arg:"subcommand:gen" help:"print random right aligned fields"`
	Info   *infoCmd   `arg:"subcommand:info" help:"show the CPU and table footprints"`
}

func (runArgs) Description() string {
	return "fixint parses 8 byte decimal fields with two table lookups.\n" +
		"the table is configured with environment variables, see 'fixint help'.\n"
}

func (runArgs) Version() string { return "fixint " + fixint.Version }

func main() { os.Exit(run()) }

func run() (code int) {
	if config.GetVersion() {
		fmt.Println(fixint.Version)
		return
	}
	cfg, err := config.New()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR: %s\n\n", err)
		config.PrintHelp(cfg, os.Stderr)
		return 1
	}
	if config.GetEnv() {
		config.PrintEnv(cfg, os.Stdout)
		return
	}
	if config.HelpRequested() {
		config.PrintHelp(cfg, os.Stderr)
		return
	}
	var args runArgs
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.Fail("missing command")
	}
	lol.SetLogLevel(cfg.LogLevel)
	log.D.S(cfg)
	if cfg.Pprof {
		defer profile.Start(profile.MemProfile).Stop()
		go func() {
			chk.E(http.ListenAndServe("127.0.0.1:6060", nil))
		}()
	}
	if cfg.MemLimit > 0 {
		debug.SetMemoryLimit(cfg.MemLimit)
	}
	if cfg.Workers == 0 {
		cfg.Workers = workers()
	}
	switch {
	case args.Gen != nil:
		return gen(os.Stdout, args.Gen)
	case args.Info != nil:
		return info(os.Stdout, args.Info)
	case args.Verify != nil:
		return verify(cfg, args.Verify)
	}
	var opts []table.Option
	if opts, err = cfg.TableOptions(); chk.E(err) {
		return 1
	}
	var ps fixint.Parser
	var tb fixint.Table
	if ps, tb, err = fixint.Open(cfg.Width, opts...); err != nil {
		log.F.F("cannot build the %s table: %v", cfg.Width, err)
		return 1
	}
	switch {
	case args.Parse != nil:
		return parse(ps, tb, args.Parse)
	case args.Bench != nil:
		defer func() { chk.E(tb.Release()) }()
		return bench(ps, args.Bench)
	}
	return
}

// workers is one per physical core when cpuid can tell, else one per logical
// CPU.
func workers() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
