package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/posener/complete"
	"go.coder.com/cli"
	"go.coder.com/flog"
	"golang.org/x/xerrors"

	"go.coder.com/defeditor/internal/editor"
)

var _ interface {
	cli.Command
	cli.FlaggedCommand
	cli.ParentCommand
} = new(rootCmd)

type rootCmd struct {
	globalFlags

	installAutocomplete   bool
	uninstallAutocomplete bool
}

func (r *rootCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "defeditor",
		Usage: "[GLOBAL FLAGS] [COMMAND] [COMMAND FLAGS] [ARGS....]",
		Desc: `Prints the text editor preferred by the environment.

The editor is read from VISUAL, then EDITOR, and defaults to "vi".
Without a command, a short summary is printed.`,
	}
}

func (r *rootCmd) Run(fl *flag.FlagSet) {
	if r.handleAutocomplete() {
		return
	}

	err := r.run(os.Stdout, r.env())
	if err != nil {
		flog.Fatal("%v", err)
	}
}

func (r *rootCmd) run(w io.Writer, env editor.Env) error {
	command, err := editor.Command(env)
	if err != nil {
		return xerrors.Errorf("Error getting default editor: %w", err)
	}
	_, err = fmt.Fprintf(w, "The default editor is: %v\n", command)
	return err
}

func (r *rootCmd) RegisterFlags(fl *flag.FlagSet) {
	fl.BoolVar(&r.verbose, "v", false, "Enable debug logging.")
	fl.StringVar(&r.configPath, "config", defaultConfigPath(), "Path to config.")

	// We don't use these directly, just added for visibility on fl.Usage().
	fl.BoolVar(&r.installAutocomplete, "install-autocomplete", false, "Install autocomplete")
	fl.BoolVar(&r.uninstallAutocomplete, "uninstall-autocomplete", false, "Uninstall autocomplete")
}

func (r *rootCmd) Subcommands() []cli.Command {
	return []cli.Command{
		&getcmd{gf: &r.globalFlags},
		&argscmd{gf: &r.globalFlags},
		&argvcmd{gf: &r.globalFlags},
		&versioncmd{},
	}
}

func main() {
	cli.RunRoot(&rootCmd{})
}

func (r *rootCmd) handleAutocomplete() bool {
	cmds := []cli.Command{r}
	cmds = append(cmds, cli.ParentCommand(r).Subcommands()...)

	cmp := complete.New("defeditor", genAutocomplete(cmds))
	cmp.InstallName = "install-autocomplete"
	cmp.UninstallName = "uninstall-autocomplete"

	// only call run if we know we want to install/uninstall autocomplete
	if r.installAutocomplete || r.uninstallAutocomplete {
		return cmp.Run()
	}

	// otherwise just process autocomplete
	return cmp.Complete()
}
