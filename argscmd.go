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

type argscmd struct {
	gf *globalFlags

	format string
}

func (c *argscmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "args",
		Usage: "[flags]",
		Desc: `Prints the editor program and its arguments.

The editor command is split on whitespace. Quotes are not interpreted.`,
	}
}

func (c *argscmd) RegisterFlags(fl *flag.FlagSet) {
	fl.StringVar(&c.format, "format", "", "Output format: plain, json or toml. Defaults to the config's format.")
}

func (c *argscmd) Run(fl *flag.FlagSet) {
	err := c.run(os.Stdout, c.gf.env())
	if err != nil {
		flog.Fatal("%v", err)
	}
}

func (c *argscmd) run(w io.Writer, env editor.Env) error {
	format, err := c.gf.format(c.format)
	if err != nil {
		return err
	}

	program, args, err := editor.CommandWithArgs(env)
	if err != nil {
		return xerrors.Errorf("failed to get editor: %w", err)
	}

	return writeParsed(w, format, parsedCommand{Program: program, Args: args})
}
