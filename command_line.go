package optparse

import (
	"errors"
	"fmt"
	"os"
)

// commandLine is the default Parser used by the package-level functions.
// Unlike flag.CommandLine it can't exist before the program declares its
// rules, so Configure installs it.
var commandLine *Parser

var ErrNotConfigured = errors.New("default parser is not configured")

// Configure compiles decls and installs the default parser used by
// Parse, Help and Usage. The default parser uses ExitOnError, matching
// the reference CLI behavior: an unrecognized option is printed to
// stderr and the process exits with a non-zero status.
func Configure(decls [][]string, banner string) error {
	p, err := NewParser(decls, banner, ExitOnError)
	if err != nil {
		return err
	}
	commandLine = p
	return nil
}

// Parse parses os.Args[1:] with the default parser.
func Parse() (Options, error) {
	if commandLine == nil {
		return nil, ErrNotConfigured
	}
	return commandLine.Parse(os.Args[1:])
}

// Help renders the default parser's help listing, "" if Configure has
// not been called.
func Help() string {
	if commandLine == nil {
		return ""
	}
	return commandLine.Help()
}

// Usage prints the default parser's help listing to its output.
// It's a variable so callers can override it.
var Usage = func() {
	if commandLine == nil {
		return
	}
	_, _ = fmt.Fprint(commandLine.Output(), commandLine.Help())
}
