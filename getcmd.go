package main

import (
	"flag"
	"io"
	"os"

	"go.coder.com/cli"
	"go.coder.com/flog"
	"golang.org/x/xerrors"

	"go.coder.com/defeditor/internal/editor"
)

type getcmd struct {
	gf *globalFlags

	format string
}

func (c *getcmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "get",
		Usage: "[flags]",
		Desc: `Prints the raw editor command.

This is the value of VISUAL if it is set, otherwise EDITOR, otherwise "vi".`,
	}
}

func (c *getcmd) RegisterFlags(fl *flag.FlagSet) {
	fl.StringVar(&c.format, "format", "", "Output format: plain, json or toml. Defaults to the config's format.")
}

func (c *getcmd) Run(fl *flag.FlagSet) {
	err := c.run(os.Stdout, c.gf.env())
	if err != nil {
		flog.Fatal("%v", err)
	}
}

func (c *getcmd) run(w io.Writer, env editor.Env) error {
	format, err := c.gf.format(c.format)
	if err != nil {
		return err
	}

	command, err := editor.Command(env)
	if err != nil {
		return xerrors.Errorf("failed to get editor: %w", err)
	}

	return writeCommand(w, format, resolvedCommand{Command: command})
}
