// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/jbind"
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/tailscale/hujson"
)

type checkCommand struct {
	ui cli.Ui

	jwcc     bool
	maxDepth int
	logLevel string
}

func (c *checkCommand) Synopsis() string {
	return "Check that files contain well-formed JSON"
}

func (c *checkCommand) Help() string {
	return strings.TrimSpace(`
Usage: jbind check [options] file...

  Check that each file contains exactly one well-formed JSON value.
  Syntax errors are reported as file:line:column. Use "-" to read
  standard input.

Options:

  -jwcc            Accept comments and trailing commas (JWCC).
  -max-depth=n     Report nesting deeper than n (0 means no limit).
  -log-level=lvl   Log level (trace, debug, info, warn, error).
`)
}

func (c *checkCommand) Run(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.Usage = func() { c.ui.Error(c.Help()) }
	fs.BoolVar(&c.jwcc, "jwcc", false, "")
	fs.IntVar(&c.maxDepth, "max-depth", 0, "")
	fs.StringVar(&c.logLevel, "log-level", "", "")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		c.ui.Error("check: at least one file is required")
		return 1
	}
	log := newLogger(c.logLevel)

	var merr *multierror.Error
	for _, path := range fs.Args() {
		data, err := readInput(path)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		if err := checkFile(log, path, data, c.jwcc, c.maxDepth); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		c.ui.Output(path + ": OK")
	}
	if err := merr.ErrorOrNil(); err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	return 0
}

// checkFile reports whether data, read from the named file, is a single
// well-formed JSON value. A syntax error is reported with the line and column
// where it occurred.
func checkFile(log hclog.Logger, name string, data []byte, jwcc bool, maxDepth int) error {
	if jwcc {
		// Standardize blanks out comments and commas in place, so offsets in
		// the result are offsets in the original.
		std, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		data = std
	}
	log.Debug("checking document", "file", name, "bytes", len(data), "jwcc", jwcc)

	err := jbind.CheckDocument(data, maxDepth)
	var serr *jbind.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Errorf("%s:%v: %s", name, serr.Position(data), serr.Message)
	}
	return err
}

// readInput reads the contents of the named file, or of stdin if name is "-".
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
