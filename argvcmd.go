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

type argvcmd struct {
	gf *globalFlags

	null bool
}

func (c *argvcmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "argv",
		Usage: "[flags] [FILE...]",
		Desc: `Prints the full argument vector that would open FILE in the editor.

Each element is printed on its own line, or terminated by NUL with -0:

	defeditor argv -0 notes.md | xargs -0 sh -c 'exec "$0" "$@" </dev/tty'

The editor is never started.`,
	}
}

func (c *argvcmd) RegisterFlags(fl *flag.FlagSet) {
	fl.BoolVar(&c.null, "0", false, "Terminate elements with NUL instead of newline.")
}

func (c *argvcmd) Run(fl *flag.FlagSet) {
	err := c.run(os.Stdout, c.gf.env(), fl.Args())
	if err != nil {
		flog.Fatal("%v", err)
	}
}

func (c *argvcmd) run(w io.Writer, env editor.Env, files []string) error {
	cmd, err := editor.Process(env)
	if err != nil {
		return err
	}
	c.gf.debug("resolved %v", cmd.Path)

	sep := "\n"
	if c.null {
		sep = "\x00"
	} else {
		conf, err := c.gf.config()
		if err != nil {
			return err
		}
		if conf.NullSeparated {
			sep = "\x00"
		}
	}

	err = writeLines(w, sep, argv(cmd.Args, files))
	if err != nil {
		return xerrors.Errorf("failed to write argv: %w", err)
	}
	return nil
}

// argv appends files to the editor's arguments.
func argv(cmdArgs []string, files []string) []string {
	out := make([]string, 0, len(cmdArgs)+len(files))
	out = append(out, cmdArgs...)
	return append(out, files...)
}
