// Package editor works with the environment to find the user's preferred editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

// Fallback is used when neither VISUAL nor EDITOR is set,
// and as the program when a command has no tokens.
const Fallback = "vi"

var variables = [...]string{"VISUAL", "EDITOR"}

// Variables returns the variables Command consults, in order.
func Variables() []string {
	v := variables
	return v[:]
}

// Env is a source of environment variables.
type Env interface {
	LookupEnv(key string) (string, bool)
}

type osEnv struct{}

func (osEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// OS reads the environment of the current process.
var OS Env = osEnv{}

// Map is an Env backed by a map.
type Map map[string]string

func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// LookupError is returned when a variable is set but can't be used.
type LookupError struct {
	Key string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("environment variable %v is not valid unicode", e.Key)
}

// Command returns the editor command preferred by env.
// A variable that is set to the empty string still wins.
func Command(env Env) (string, error) {
	for _, key := range variables {
		v, ok := env.LookupEnv(key)
		if !ok {
			continue
		}
		if !utf8.ValidString(v) {
			return "", &LookupError{Key: key}
		}
		return v, nil
	}
	return Fallback, nil
}

// Split breaks command on whitespace into a program and its arguments.
// Quotes are not interpreted.
func Split(command string) (string, []string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Fallback, []string{}
	}
	return fields[0], fields[1:]
}

// CommandWithArgs is Command followed by Split.
func CommandWithArgs(env Env) (string, []string, error) {
	command, err := Command(env)
	if err != nil {
		return "", nil, err
	}
	program, args := Split(command)
	return program, args, nil
}

// Process returns an unstarted command for the editor preferred by env.
// Its stdio is attached to the current process.
func Process(env Env) (*exec.Cmd, error) {
	program, args, err := CommandWithArgs(env)
	if err != nil {
		return nil, xerrors.Errorf("failed to resolve editor: %w", err)
	}

	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// MustProcess is like Process but panics if the editor can't be resolved.
func MustProcess(env Env) *exec.Cmd {
	cmd, err := Process(env)
	if err != nil {
		panic(err)
	}
	return cmd
}

// Get returns the editor command of the current process.
func Get() (string, error) {
	return Command(OS)
}

// GetWithArgs returns the editor program and arguments of the current process.
func GetWithArgs() (string, []string, error) {
	return CommandWithArgs(OS)
}

// Cmd returns the editor process of the current process, panicking on failure.
func Cmd() *exec.Cmd {
	return MustProcess(OS)
}
