// Package env is an implementation of the env.Source interface from
// go-simpler.org
package env

import (
	"os"
	"strings"

	"fixint.lol/chk"
)

// Source is the lookup go-simpler.org/env reads variables through.
type Source interface {
	LookupEnv(key string) (value string, ok bool)
}

// Env is a key/value map used to represent environment variables. This is
// implemented for go-simpler.org library.
type Env map[string]string

// GetEnv reads a file expected to represent a collection of KEY=value in
// standard shell environment variable format - ie, key usually in all upper
// case no spaces and words separated by underscore, value can have any
// separator, but usually comma, for an array of values. Blank lines, comments
// and a leading "export " are ignored and quotes are removed, so the output of
// the env command loads back unchanged.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	lines := strings.Split(string(s), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		split := strings.SplitN(line, "=", 2)
		if len(split) != 2 {
			continue
		}
		env[strings.TrimSpace(split[0])] = unquote(strings.TrimSpace(split[1]))
	}
	return
}

// unquote strips the shell quoting keyvalue.PrintEnv adds.
func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	switch q := v[0]; {
	case q == '\'' && v[len(v)-1] == '\'':
		return strings.ReplaceAll(v[1:len(v)-1], `'\''`, "'")
	case q == '"' && v[len(v)-1] == '"':
		return v[1 : len(v)-1]
	}
	return v
}

// LookupEnv returns the raw string value associated with a provided key name,
// used as a custom environment variable loader for go-simpler.org/env to enable
// .env file loading.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}

// OS is the process environment.
type OS struct{}

func (OS) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Chain looks a key up in each source in turn, so earlier sources win.
type Chain []Source

func (c Chain) LookupEnv(key string) (value string, ok bool) {
	for _, s := range c {
		if value, ok = s.LookupEnv(key); ok {
			return
		}
	}
	return
}
