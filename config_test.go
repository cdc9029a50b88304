package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) (string, func()) {
	dir, err := ioutil.TempDir("", "defeditor-config")
	require.NoError(t, err)

	path := filepath.Join(dir, "defeditor.toml")
	err = ioutil.WriteFile(path, []byte(contents), 0644)
	require.NoError(t, err)

	return path, func() { os.RemoveAll(dir) }
}

func Test_readConfig(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		c, err := readConfig(filepath.Join(os.TempDir(), "defeditor-does-not-exist", "defeditor.toml"))
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), c)
	})
	t.Run("Format", func(t *testing.T) {
		path, cleanup := writeTempConfig(t, "format = \"json\"\nnull_separated = true\n")
		defer cleanup()

		c, err := readConfig(path)
		require.NoError(t, err)
		assert.Equal(t, config{Format: formatJSON, NullSeparated: true}, c)
	})
	t.Run("PartialKeepsDefaults", func(t *testing.T) {
		path, cleanup := writeTempConfig(t, "null_separated = true\n")
		defer cleanup()

		c, err := readConfig(path)
		require.NoError(t, err)
		assert.Equal(t, formatPlain, c.Format)
		assert.True(t, c.NullSeparated)
	})
	t.Run("UnknownFormat", func(t *testing.T) {
		path, cleanup := writeTempConfig(t, "format = \"yaml\"\n")
		defer cleanup()

		_, err := readConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown format "yaml"`)
	})
	t.Run("Malformed", func(t *testing.T) {
		path, cleanup := writeTempConfig(t, "format = \n")
		defer cleanup()

		_, err := readConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})
}
