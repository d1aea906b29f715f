package main

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/cpuid/v2"
	"github.com/sugawarayuuta/sonnet"

	"fixint.lol/alphabet"
	"fixint.lol/chk"
	"fixint.lol/table"
	"fixint.lol/units"
)

type cacheInfo struct {
	Name  string `json:"name"`
	Bytes int    `json:"bytes"`
}

type report struct {
	CPU       string         `json:"cpu"`
	Vendor    string         `json:"vendor"`
	Physical  int            `json:"physical_cores"`
	Logical   int            `json:"logical_cores"`
	CacheLine int            `json:"cache_line"`
	Caches    []cacheInfo    `json:"caches"`
	Tables    map[string]int `json:"tables_gib"`
	Alphabets map[string]int `json:"sparse_entries"`
}

func newReport() (r *report) {
	c := cpuid.CPU
	r = &report{
		CPU:       c.BrandName,
		Vendor:    c.VendorString,
		Physical:  c.PhysicalCores,
		Logical:   c.LogicalCores,
		CacheLine: c.CacheLine,
		Tables:    map[string]int{},
		Alphabets: map[string]int{},
	}
	for _, l := range []cacheInfo{{"L1d", c.Cache.L1D}, {"L2", c.Cache.L2}, {"L3", c.Cache.L3}} {
		if l.Bytes > 0 {
			r.Caches = append(r.Caches, l)
		}
	}
	var narrow int16
	var wide int32
	r.Tables[table.Narrow] = int(table.Size * uint64(unsafe.Sizeof(narrow)) / units.GiB)
	r.Tables[table.Wide] = int(table.Size * uint64(unsafe.Sizeof(wide)) / units.GiB)
	for _, a := range []*alphabet.T{alphabet.Standard, alphabet.Terminated} {
		r.Alphabets[a.Name] = a.Count()
	}
	return
}

func (r *report) write(w io.Writer) {
	_, _ = fmt.Fprintf(w, "cpu:        %s (%s)\n", r.CPU, r.Vendor)
	_, _ = fmt.Fprintf(w, "cores:      %d physical, %d logical\n", r.Physical, r.Logical)
	_, _ = fmt.Fprintf(w, "cache line: %d bytes\n", r.CacheLine)
	for _, l := range r.Caches {
		_, _ = fmt.Fprintf(w, "%-11s %s\n", l.Name+":", humanize.IBytes(uint64(l.Bytes)))
	}
	for _, name := range []string{table.Narrow, table.Wide} {
		_, _ = fmt.Fprintf(w, "%-11s %d GiB reserved\n", name+":", r.Tables[name])
	}
	for _, a := range []*alphabet.T{alphabet.Standard, alphabet.Terminated} {
		_, _ = fmt.Fprintf(w, "%-11s %s sparse entries\n", a.Name+":",
			humanize.Comma(int64(r.Alphabets[a.Name])))
	}
}

func info(w io.Writer, cmd *infoCmd) (code int) {
	r := newReport()
	if !cmd.JSON {
		r.write(w)
		return
	}
	b, err := sonnet.Marshal(r)
	if chk.E(err) {
		return 1
	}
	_, _ = w.Write(append(b, '\n'))
	return
}
