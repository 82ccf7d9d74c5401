package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathIsDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profseq.yaml")

	c1 := Default()
	c1.Alphabet = "protein"
	c1.Unity = 10
	c1.Threads = 3
	c1.Format = FormatJSON
	c1.Sort = true
	require.NoError(t, Save(path, c1))

	c2, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unity: 250\nformat: YML\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, c.Unity)
	assert.Equal(t, FormatYAML, c.Format)
	assert.Equal(t, "dna", c.Alphabet)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "unity: [", "parsing config file"},
		{"bad unity", "unity: 0", "unity must be > 0"},
		{"bad threads", "threads: -1", "threads must be >= 0"},
		{"bad format", "format: xml", "invalid format"},
		{"bad alphabet", "alphabet: klingon", "unknown alphabet"},
	}
	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "c"+string(rune('a'+i))+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o600))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRequiresArgs(t *testing.T) {
	assert.Error(t, Save("", Default()))
	assert.Error(t, Save(filepath.Join(t.TempDir(), "x.yaml"), nil))
}
