// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/creachadair/jbind"
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/tailscale/hujson"
)

type locateCommand struct {
	ui cli.Ui

	jwcc     bool
	logLevel string
}

func (c *locateCommand) Synopsis() string {
	return "Find the value at a path in a JSON document"
}

func (c *locateCommand) Help() string {
	return strings.TrimSpace(`
Usage: jbind locate [options] path file

  Find the value at path in the JSON document in file, and print its
  location and kind. A path has the form "$.name[index]['quoted name']".
  Use "-" to read standard input.

Options:

  -jwcc            Accept comments and trailing commas (JWCC).
  -log-level=lvl   Log level (trace, debug, info, warn, error).
`)
}

func (c *locateCommand) Run(args []string) int {
	fs := flag.NewFlagSet("locate", flag.ContinueOnError)
	fs.Usage = func() { c.ui.Error(c.Help()) }
	fs.BoolVar(&c.jwcc, "jwcc", false, "")
	fs.StringVar(&c.logLevel, "log-level", "", "")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		c.ui.Error("locate: a path and a file are required")
		return 1
	}
	log := newLogger(c.logLevel)

	path, err := jbind.ParsePath(fs.Arg(0))
	if err != nil {
		c.ui.Error(fmt.Sprintf("locate: invalid path: %v", err))
		return 1
	}
	data, err := readInput(fs.Arg(1))
	if err != nil {
		c.ui.Error(fmt.Sprintf("locate: %v", err))
		return 1
	}
	if c.jwcc {
		data, err = hujson.Standardize(data)
		if err != nil {
			c.ui.Error(fmt.Sprintf("locate: %s: %v", fs.Arg(1), err))
			return 1
		}
	}

	kind, span, err := locate(log, data, path)
	if err != nil {
		c.ui.Error(fmt.Sprintf("locate: %s: %v", fs.Arg(1), err))
		return 1
	}
	c.ui.Output(fmt.Sprintf("%v\t%v\t%v", path, jbind.LocateSpan(data, span), kind))
	return 0
}

// errFound stops a container scan when the wanted member or element has been
// reached, with the cursor at the start of its value.
var errFound = errors.New("found")

// locate finds the value at path in data, and reports its kind and span.
// Values along the path are not decoded, and values that are not on the path
// are skipped without being checked in full.
func locate(log hclog.Logger, data []byte, path jbind.Path) (jbind.Kind, jbind.Span, error) {
	c := jbind.NewCursor(data)
	for i, seg := range path {
		log.Trace("path step", "segment", seg.String(), "offset", c.Pos())

		var outcome jbind.Outcome
		var err error
		if seg.IsIndex() {
			var r jbind.Result[int]
			r, err = jbind.ScanArray(c, func(_ *jbind.Cursor, j int) error {
				if j == seg.Index() {
					return errFound
				}
				return nil
			})
			outcome = r.Outcome
		} else {
			var r jbind.Result[struct{}]
			r, err = jbind.ScanObject(c, func(_ *jbind.Cursor, name []byte) error {
				if key, err := jbind.Unquote(name); err != nil {
					return err
				} else if key == seg.Name() {
					return errFound
				}
				return nil
			})
			outcome = r.Outcome
		}

		at := path[:i+1]
		switch {
		case errors.Is(err, errFound):
			continue
		case err != nil:
			return jbind.Invalid, jbind.Span{}, err
		case outcome == jbind.Matched:
			return jbind.Invalid, jbind.Span{}, fmt.Errorf("%v: not found", at)
		case outcome == jbind.IsNull:
			return jbind.Invalid, jbind.Span{}, fmt.Errorf("%v: parent is null", at)
		default:
			return jbind.Invalid, jbind.Span{}, fmt.Errorf("%v: parent is not a container", at)
		}
	}

	c.SkipSpace()
	start := c.Pos()
	kind, err := c.SkipValue()
	if err != nil {
		return jbind.Invalid, jbind.Span{}, err
	}
	log.Debug("located value", "path", path.String(), "kind", kind.String(), "offset", start)
	return kind, jbind.Span{Pos: start, End: c.Pos()}, nil
}
