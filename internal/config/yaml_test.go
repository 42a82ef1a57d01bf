package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tova.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOptionsReadsTolerantAndStrict(t *testing.T) {
	path := writeTemp(t, "tolerant: false\nstrict: true\n")
	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.False(t, opts.Tolerant)
	assert.True(t, opts.Strict)
}

func TestLoadOptionsMissingFileErrors(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadExtraBuiltinsMergesNameReturnPairs(t *testing.T) {
	path := writeTemp(t, "builtins:\n  - name: fetch\n    returns: String\n  - name: now\n    returns: Int\n")
	extra, err := LoadExtraBuiltins(path)
	require.NoError(t, err)
	assert.Equal(t, "String", extra["fetch"])
	assert.Equal(t, "Int", extra["now"])
}

func TestDefaultOptionsAreTolerantNotStrict(t *testing.T) {
	d := Default()
	assert.True(t, d.Tolerant)
	assert.False(t, d.Strict)
}
