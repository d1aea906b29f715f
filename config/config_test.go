package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fixint.lol/table"
)

func TestDefaults(t *testing.T) {
	t.Setenv("FIXINT_PROFILE", t.TempDir())
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "fixint", cfg.AppName)
	require.Equal(t, "sparse", cfg.Strategy)
	require.Equal(t, Narrow, cfg.Width)
	require.Equal(t, "standard", cfg.Alphabet)
	require.Equal(t, "info", cfg.LogLevel)
	opts, err := cfg.TableOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)
}

func TestDotEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FIXINT_PROFILE", dir)
	t.Setenv("FIXINT_WIDTH", Wide)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"export FIXINT_WIDTH=narrow\nexport FIXINT_STRATEGY=dense\nexport FIXINT_WORKERS=3\n"),
		0600))
	cfg, err := New()
	require.NoError(t, err)
	// the environment wins over the file
	require.Equal(t, Wide, cfg.Width)
	require.Equal(t, "dense", cfg.Strategy)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, dir, cfg.Profile)
	opts, err := cfg.TableOptions()
	require.NoError(t, err)
	require.Len(t, opts, 3)
}

func TestPrintEnvLoadsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FIXINT_PROFILE", dir)
	t.Setenv("FIXINT_ALPHABET", "terminated")
	t.Setenv("FIXINT_LOG_LEVEL", "debug")
	cfg, err := New()
	require.NoError(t, err)
	var buf bytes.Buffer
	PrintEnv(cfg, &buf)
	require.Contains(t, buf.String(), "export FIXINT_ALPHABET=terminated\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), buf.Bytes(), 0600))
	os.Unsetenv("FIXINT_ALPHABET")
	os.Unsetenv("FIXINT_LOG_LEVEL")
	cfg2, err := New()
	require.NoError(t, err)
	require.Equal(t, cfg, cfg2)
}

func TestValidate(t *testing.T) {
	good := C{LogLevel: "info", Strategy: "sparse", Width: Narrow, Alphabet: "standard"}
	require.NoError(t, good.Validate())
	for _, mutate := range []func(c *C){
		func(c *C) { c.Strategy = "lazy" },
		func(c *C) { c.Width = "medium" },
		func(c *C) { c.Alphabet = "latin1" },
		func(c *C) { c.Workers = -1 },
		func(c *C) { c.LogLevel = "chatty" },
	} {
		c := good
		mutate(&c)
		require.Error(t, c.Validate(), "%+v", c)
	}
	c := good
	c.Strategy = table.Dense.String()
	require.NoError(t, c.Validate())
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&C{AppName: "fixint", Profile: "/tmp/fixint"}, &buf)
	require.Contains(t, buf.String(), "FIXINT_STRATEGY")
	require.Contains(t, buf.String(), "/tmp/fixint/.env")
}
