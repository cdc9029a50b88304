package main

import (
	"flag"
	"fmt"

	"go.coder.com/cli"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

type versioncmd struct{}

func (v *versioncmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name: "version",
		Desc: "Prints the current version.",
	}
}

func (v *versioncmd) Run(fl *flag.FlagSet) {
	fmt.Println(version)
}
