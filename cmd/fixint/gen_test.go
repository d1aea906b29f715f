package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fixint.lol/field"
)

func TestGen(t *testing.T) {
	var out bytes.Buffer
	require.Zero(t, gen(&out, &genCmd{N: 1000, Plus: true}))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 1000)
	for _, l := range lines {
		require.Len(t, l, field.Width, "%q", l)
		require.NoError(t, field.Validate([]byte(l)), "%q", l)
		v, err := strconv.Atoi(strings.TrimLeft(l, " +"))
		require.NoError(t, err)
		require.Equal(t, v < 10000000, strings.Contains(l, "+"), "%q", l)
	}
}
