// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jbind checks and navigates JSON documents using the jbind scanner.
//
// Usage:
//
//	jbind check [-jwcc] [-max-depth n] file...
//	jbind locate [-jwcc] path file
//
// The check command reports whether each file is a single well-formed JSON
// value, printing the line and column of each syntax error. The locate
// command finds the value at a path such as "$.items[2].name" and prints its
// location and kind. With -jwcc, comments and trailing commas are accepted.
//
// The log level is set by the -log-level flag, or by the JBIND_LOG_LEVEL
// environment variable when the flag is not given.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

const version = "0.1.0"

func main() {
	ui := &cli.BasicUi{Reader: os.Stdin, Writer: os.Stdout, ErrorWriter: os.Stderr}

	c := cli.NewCLI("jbind", version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"check": func() (cli.Command, error) {
			return &checkCommand{ui: ui}, nil
		},
		"locate": func() (cli.Command, error) {
			return &locateCommand{ui: ui}, nil
		},
	}

	status, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(status)
}

// newLogger constructs the logger for a command. An empty level selects the
// value of JBIND_LOG_LEVEL, and failing that "warn".
func newLogger(level string) hclog.Logger {
	if level == "" {
		level = os.Getenv("JBIND_LOG_LEVEL")
	}
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "jbind",
		Level:  lvl,
		Output: os.Stderr,
	})
}
