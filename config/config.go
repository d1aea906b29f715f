// Package config reads the settings for fixint from the environment, overlaid
// on an optional .env file in the profile directory.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"go-simpler.org/env"

	"fixint.lol/alphabet"
	"fixint.lol/chk"
	"fixint.lol/config/keyvalue"
	envfile "fixint.lol/env"
	"fixint.lol/lol"
	"fixint.lol/table"
)

// C is the configuration for the table a process builds and the logging around
// it.
type C struct {
	AppName  string `env:"FIXINT_APP_NAME" default:"fixint"`
	Profile  string `env:"FIXINT_PROFILE" usage:"directory of an optional .env file (default $XDG_CONFIG_HOME/APP_NAME)"`
	LogLevel string `env:"FIXINT_LOG_LEVEL" default:"info" usage:"debug level: fatal error warn info debug trace"`
	Strategy string `env:"FIXINT_STRATEGY" default:"sparse" usage:"how the table is populated: sparse (only the legal alphabet) or dense (all 2^32 keys)"`
	Width    string `env:"FIXINT_WIDTH" default:"narrow" usage:"table entry width: narrow (int16, 8GiB address space) or wide (int32, 16GiB)"`
	Alphabet string `env:"FIXINT_ALPHABET" default:"standard" usage:"sparse alphabet: standard or terminated (NUL admitted in the first position)"`
	Workers  int    `env:"FIXINT_WORKERS" default:"0" usage:"goroutines for a dense fill, 0 means one per core"`
	Pprof    bool   `env:"FIXINT_PPROF" default:"false" usage:"memory profile the run and serve pprof on 127.0.0.1:6060"`
	MemLimit int64  `env:"FIXINT_MEM_LIMIT" default:"0" usage:"soft limit for the Go heap in bytes, 0 leaves it unset (table storage is not Go heap on unix)"`
}

const (
	Narrow = table.Narrow
	Wide   = table.Wide
)

// New loads the configuration from the environment, then again with the .env
// file in the profile directory filling in whatever the environment leaves
// unset.
func New() (cfg *C, err error) {
	cfg = &C{}
	if err = env.Load(cfg, nil); chk.T(err) {
		return
	}
	if cfg.Profile == "" {
		cfg.Profile = filepath.Join(xdg.ConfigHome, cfg.AppName)
	}
	envPath := filepath.Join(cfg.Profile, ".env")
	if _, err = os.Stat(envPath); err == nil {
		var e envfile.Env
		if e, err = envfile.GetEnv(envPath); chk.E(err) {
			return
		}
		profile := cfg.Profile
		if err = env.Load(cfg, &env.Options{Source: envfile.Chain{envfile.OS{}, e}}); chk.E(err) {
			return
		}
		cfg.Profile = profile
	}
	err = cfg.Validate()
	return
}

// Validate checks the enumerated settings.
func (cfg *C) Validate() (err error) {
	if _, err = table.ParseStrategy(cfg.Strategy); err != nil {
		return
	}
	switch cfg.Width {
	case Narrow, Wide:
	default:
		return errors.Errorf("unknown table width %q", cfg.Width)
	}
	if alphabet.ByName(cfg.Alphabet) == nil {
		return errors.Errorf("unknown alphabet %q", cfg.Alphabet)
	}
	if cfg.Workers < 0 {
		return errors.Errorf("negative worker count %d", cfg.Workers)
	}
	for _, l := range lol.LevelNames {
		if l == cfg.LogLevel {
			return
		}
	}
	return errors.Errorf("unknown log level %q", cfg.LogLevel)
}

// TableOptions turns the configuration into options for table.New.
func (cfg *C) TableOptions() (opts []table.Option, err error) {
	var s table.Strategy
	if s, err = table.ParseStrategy(cfg.Strategy); err != nil {
		return
	}
	opts = append(opts, table.WithStrategy(s))
	if a := alphabet.ByName(cfg.Alphabet); a != nil {
		opts = append(opts, table.WithAlphabet(a))
	}
	if cfg.Workers > 0 {
		opts = append(opts, table.WithWorkers(cfg.Workers))
	}
	return
}

// HelpRequested returns true if the first command line parameter asks for the
// configuration help. The -h and --help flags are left to the command parser.
func HelpRequested() (help bool) {
	if len(os.Args) > 1 {
		switch strings.ToLower(os.Args[1]) {
		case "help", "?":
			help = true
		}
	}
	return
}

// GetEnv returns true if the env verb is the first parameter.
func GetEnv() (requested bool) {
	return len(os.Args) > 1 && strings.ToLower(os.Args[1]) == "env"
}

// GetVersion returns true if the version verb is the first parameter.
func GetVersion() (requested bool) {
	return len(os.Args) > 1 && strings.ToLower(os.Args[1]) == "version"
}

// PrintEnv renders the configuration as a shell script of exports, which
// loads back as a .env file.
func PrintEnv(cfg *C, printer io.Writer) { keyvalue.PrintEnv(*cfg, printer) }

// PrintHelp outputs a help text listing the configuration options and default
// values to a provided io.Writer (usually os.Stderr or os.Stdout).
func PrintHelp(cfg *C, printer io.Writer) {
	_, _ = fmt.Fprintf(printer,
		"\nenvironment variables that configure %s\n\n", cfg.AppName)
	env.Usage(cfg, printer, nil)
	_, _ = fmt.Fprintf(printer,
		"\nCLI parameter 'help' also prints this information\n"+
			"\n.env file found at the path %s will be automatically "+
			"loaded for configuration.\nset FIXINT_PROFILE for a custom load path. "+
			"the environment overrides the file.\n\n"+
			"use the parameter 'env' to print out the current configuration to the terminal\n\n"+
			"set the environment using\n\n\t%s env > %s/.env\n\n"+
			"run '%s -h' for the commands\n\n",
		filepath.Join(cfg.Profile, ".env"), os.Args[0], cfg.Profile, os.Args[0])
}
