package main

import (
	"flag"
	"fmt"
	"unicode/utf8"

	"github.com/posener/complete"

	"go.coder.com/cli"
)

const rootName = "defeditor"

// genAutocomplete builds the completion tree for cmds.
// The root command's flags become global flags.
func genAutocomplete(cmds []cli.Command) complete.Command {
	ac := complete.Command{
		Sub:         complete.Commands{},
		Flags:       complete.Flags{},
		GlobalFlags: complete.Flags{},
	}

	for _, c := range cmds {
		if c.Spec().Name != rootName {
			ac.Sub[c.Spec().Name] = commandAutocomplete(c)
			continue
		}

		if f, ok := c.(cli.FlaggedCommand); ok {
			visitFlags(f, func(f *flag.Flag) {
				ac.GlobalFlags[fmtFlag(f.Name)] = predictFlag(f)
			})
		}
	}

	return ac
}

func commandAutocomplete(cmd cli.Command) complete.Command {
	child := complete.Command{
		Sub:   complete.Commands{},
		Flags: complete.Flags{},
	}

	if f, ok := cmd.(cli.FlaggedCommand); ok {
		visitFlags(f, func(f *flag.Flag) {
			child.Flags[fmtFlag(f.Name)] = predictFlag(f)
		})
	}

	if pc, ok := cmd.(cli.ParentCommand); ok {
		for _, sub := range pc.Subcommands() {
			child.Sub[sub.Spec().Name] = commandAutocomplete(sub)
		}
	}

	// argv takes files as operands.
	if cmd.Spec().Name == "argv" {
		child.Args = complete.PredictFiles("*")
	}

	return child
}

func predictFlag(f *flag.Flag) complete.Predictor {
	switch f.Name {
	case "config":
		return complete.PredictFiles("*.toml")
	case "format":
		return complete.PredictSet(formats...)
	}
	if isBoolFlag(f) {
		return complete.PredictNothing
	}
	return complete.PredictAnything
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// visitFlags registers cmd's flags on a throwaway FlagSet and visits them.
func visitFlags(cmd cli.FlaggedCommand, fn func(f *flag.Flag)) {
	set := flag.NewFlagSet("", flag.ContinueOnError)
	cmd.RegisterFlags(set)

	set.VisitAll(fn)
}

func fmtFlag(name string) string {
	if utf8.RuneCountInString(name) > 1 {
		return fmt.Sprintf("--%s", name)
	}
	return fmt.Sprintf("-%s", name)
}
