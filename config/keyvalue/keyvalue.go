// Package keyvalue flattens a go-simpler/env tagged configuration struct into
// sorted key/value pairs and renders them as a shell script of exports.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV lists the `env` tagged fields of a config struct value (not a pointer).
// Fields without the tag, such as embedded structs, are skipped.
func EnvKV(cfg any) (m KVSlice) {
	t := reflect.TypeOf(cfg)
	v := reflect.ValueOf(cfg)
	for i := 0; i < t.NumField(); i++ {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		var val string
		switch f := v.Field(i); f.Kind() {
		case reflect.String:
			val = f.String()
		case reflect.Slice:
			if arr, ok := f.Interface().([]string); ok {
				val = strings.Join(arr, ",")
			}
		default:
			val = fmt.Sprint(f.Interface())
		}
		m = append(m, KV{k, val})
	}
	return
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t'\"$\\`#;&|<>()") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}

// PrintEnv renders the key/values of a config struct to a provided io.Writer,
// sorted by key.
func PrintEnv(cfg any, printer io.Writer) {
	_, _ = fmt.Fprintln(printer, "#!/usr/bin/env bash")
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		_, _ = fmt.Fprintf(printer, "export %s=%s\n", v.Key, quote(v.Value))
	}
}
