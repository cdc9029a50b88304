package main

import (
	"github.com/fatih/color"
	"go.coder.com/flog"

	"go.coder.com/defeditor/internal/editor"
)

type globalFlags struct {
	verbose    bool
	configPath string
}

func (gf *globalFlags) debug(msg string, args ...interface{}) {
	if !gf.verbose {
		return
	}

	flog.Log(
		flog.Level(color.New(color.FgHiMagenta).Sprint("DEBUG")),
		msg, args...,
	)
}

func (gf *globalFlags) config() (config, error) {
	c, err := readConfig(gf.configPath)
	if err != nil {
		return config{}, err
	}
	gf.debug("config: %+v", c)
	return c, nil
}

// env returns the environment editors are resolved from.
func (gf *globalFlags) env() editor.Env {
	if gf.verbose {
		for _, key := range editor.Variables() {
			v, ok := editor.OS.LookupEnv(key)
			if ok {
				gf.debug("%v=%q", key, v)
			} else {
				gf.debug("%v is unset", key)
			}
		}
	}
	return editor.OS
}

// format returns the output format to use, preferring override to the config.
func (gf *globalFlags) format(override string) (string, error) {
	if override != "" {
		err := checkFormat(override)
		if err != nil {
			return "", err
		}
		return override, nil
	}

	c, err := gf.config()
	if err != nil {
		return "", err
	}
	return c.Format, nil
}
