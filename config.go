package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"
)

// config describes defeditor.toml.
// Changes to this should be accompanied by changes to defaultConfig.
type config struct {
	Format        string `toml:"format"`
	NullSeparated bool   `toml:"null_separated"`
}

func defaultConfig() config {
	return config{
		Format: formatPlain,
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "defeditor.toml"
	}
	return filepath.Join(dir, "defeditor", "defeditor.toml")
}

// readConfig reads the config at path.
// A missing file is not an error, defaults are returned instead.
func readConfig(path string) (config, error) {
	c := defaultConfig()
	_, err := toml.DecodeFile(path, &c)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return config{}, xerrors.Errorf("failed to parse config @ %v: %w", path, err)
	}

	err = checkFormat(c.Format)
	if err != nil {
		return config{}, xerrors.Errorf("invalid config @ %v: %w", path, err)
	}
	return c, nil
}
