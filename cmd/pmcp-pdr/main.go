// pmcp-pdr is a CLI tool for inspecting PDR dumps and terminus
// diagnostic logs.
package main

import (
	"fmt"
	"os"

	"github.com/pmcp-protocol/pmcp-go/cmd/pmcp-pdr/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "decode":
		exitCode = commands.RunDecode(args, os.Stdout, os.Stderr)
	case "log":
		exitCode = commands.RunLog(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("pmcp-pdr version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`pmcp-pdr - PDR dump and diagnostic log inspector

Usage:
  pmcp-pdr <command> [options] [files...]

Commands:
  decode     Decode a binary PDR dump into typed records
  log        View terminus diagnostic logs (.plog)

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  pmcp-pdr decode terminus-9.pdrs
  pmcp-pdr decode --format yaml terminus-9.pdrs
  pmcp-pdr log terminus-9.plog
  pmcp-pdr log --category FAULT terminus-9.plog

For command-specific help, run:
  pmcp-pdr <command> --help`)
}
