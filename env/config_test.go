package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`#!/usr/bin/env bash
export FIXINT_STRATEGY=dense
FIXINT_WIDTH = wide
export FIXINT_PROFILE='/home/a b/it'\''s'
FIXINT_APP_NAME="quoted"

# comment
garbage
`), 0600))
	e, err := GetEnv(path)
	require.NoError(t, err)
	require.Equal(t, Env{
		"FIXINT_STRATEGY": "dense",
		"FIXINT_WIDTH":    "wide",
		"FIXINT_PROFILE":  "/home/a b/it's",
		"FIXINT_APP_NAME": "quoted",
	}, e)
	_, err = GetEnv(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestChain(t *testing.T) {
	c := Chain{Env{"A": "first"}, Env{"A": "second", "B": "only"}}
	v, ok := c.LookupEnv("A")
	require.True(t, ok)
	require.Equal(t, "first", v)
	v, ok = c.LookupEnv("B")
	require.True(t, ok)
	require.Equal(t, "only", v)
	_, ok = c.LookupEnv("C")
	require.False(t, ok)
	t.Setenv("FIXINT_CHAIN_TEST", "os")
	v, _ = Chain{OS{}, Env{"FIXINT_CHAIN_TEST": "file"}}.LookupEnv("FIXINT_CHAIN_TEST")
	require.Equal(t, "os", v)
}
