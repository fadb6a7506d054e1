package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-flashcards/internal/config"
)

// commands lists the subcommand names. Anything else runs build.
var commands = map[string]bool{
	"build":      true,
	"init":       true,
	"doctor":     true,
	"completion": true,
	"version":    true,
	"help":       true,
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return commands[arg]
}

// runMain dispatches args (including the program name) and returns the
// process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	rest := args[1:]

	cmd := "build"
	if len(rest) > 0 {
		switch {
		case isCommand(rest[0]):
			cmd, rest = rest[0], rest[1:]
		case rest[0] == "-h" || rest[0] == "--help":
			cmd, rest = "help", nil
		case rest[0] == "--version":
			cmd, rest = "version", nil
		}
	}

	switch cmd {
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	case "version":
		fmt.Fprintf(env.Stdout, "flashcards %s\n", Version)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		return report(env, runCompletion(rest, env), "completion failed", "")
	case "init":
		flags, positional, err := parseInitFlags(rest, env.Stderr)
		if err != nil {
			return flagErrorCode(err)
		}
		logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
		err = runInit(positional, flags, env, logger)
		return report(env, err, "init failed", "")
	default:
		flags, positional, err := parseBuildFlags(rest, env.Stderr)
		if err != nil {
			return flagErrorCode(err)
		}
		logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
		err = runBuild(ctx, positional, flags, env, logger)

		templateDir := flags.templates.dir
		if templateDir == "" {
			templateDir = config.DefaultTemplateDir
		}
		return report(env, err, "build failed", templateDir)
	}
}

// flagErrorCode maps a flag parsing error to an exit code. pflag has
// already printed the error and usage.
func flagErrorCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	return ExitUsage
}

// report logs err with a hint and returns its exit code.
func report(env *Environment, err error, msg, templateDir string) int {
	if err == nil {
		return ExitSuccess
	}

	code := exitCodeFor(err)
	logger := newLogger(env.Stderr, false, false)
	logger.Error(msg, "error", err.Error(), "exit", code)
	if hint := hintFor(err, templateDir); hint != "" {
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(hint, "\n"))
	}
	return code
}
