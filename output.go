package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"
)

const (
	formatPlain = "plain"
	formatJSON  = "json"
	formatTOML  = "toml"
)

var formats = []string{formatPlain, formatJSON, formatTOML}

func checkFormat(format string) error {
	for _, f := range formats {
		if f == format {
			return nil
		}
	}
	return xerrors.Errorf("unknown format %q, expected one of %v", format, strings.Join(formats, ", "))
}

// resolvedCommand is the raw editor command.
type resolvedCommand struct {
	Command string `json:"command" toml:"command"`
}

// parsedCommand is an editor command split into its program and arguments.
type parsedCommand struct {
	Program string   `json:"program" toml:"program"`
	Args    []string `json:"args" toml:"args"`
}

func writeCommand(w io.Writer, format string, rc resolvedCommand) error {
	switch format {
	case formatPlain:
		_, err := fmt.Fprintln(w, rc.Command)
		return err
	default:
		return encode(w, format, rc)
	}
}

// writeParsed writes pc to w.
// The plain format puts the program and each argument on its own line.
func writeParsed(w io.Writer, format string, pc parsedCommand) error {
	switch format {
	case formatPlain:
		return writeLines(w, "\n", append([]string{pc.Program}, pc.Args...))
	default:
		return encode(w, format, pc)
	}
}

func writeLines(w io.Writer, sep string, lines []string) error {
	for _, l := range lines {
		_, err := io.WriteString(w, l+sep)
		if err != nil {
			return err
		}
	}
	return nil
}

func encode(w io.Writer, format string, v interface{}) error {
	var err error
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		err = enc.Encode(v)
	case formatTOML:
		err = toml.NewEncoder(w).Encode(v)
	default:
		return checkFormat(format)
	}
	if err != nil {
		return xerrors.Errorf("failed to encode %v: %w", format, err)
	}
	return nil
}
