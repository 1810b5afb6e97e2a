package main

import (
	"context"
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	os.Exit(run(os.Args[1:], newEnvironment()))
}

// run dispatches the top-level command and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return exitError
	}

	switch args[0] {
	case "convert":
		if err := runConvert(context.Background(), args[1:], env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitError
		}
		return exitSuccess
	case "version":
		fmt.Fprintf(env.Stdout, "recipe2doc %s\n", Version)
		return exitSuccess
	case "help":
		runHelp(args[1:], env)
		return exitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", args[0])
		printUsage(env.Stderr)
		return exitError
	}
}
