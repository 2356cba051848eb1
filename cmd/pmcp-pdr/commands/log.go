// Package commands implements the pmcp-pdr CLI commands.
package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pmcp-protocol/pmcp-go/pkg/log"
)

// LogOptions holds options for the log command.
type LogOptions struct {
	TID      *uint8
	PassID   string
	Category *log.Category
	Stats    bool
	File     string
}

// RunLog executes the log command with the given arguments.
// Returns the exit code.
func RunLog(args []string, stdout, stderr io.Writer) int {
	opts, err := parseLogArgs(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			printLogUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printLogUsage(stderr)
		return exitCommandError
	}

	reader, err := log.NewFilteredReader(opts.File, log.Filter{
		TID:      opts.TID,
		PassID:   opts.PassID,
		Category: opts.Category,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer reader.Close()

	counts := map[log.Category]int{}
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to read event: %v\n", err)
			return exitCommandError
		}

		counts[event.Category]++
		if !opts.Stats {
			formatEvent(stdout, event)
		}
	}

	if opts.Stats {
		total := 0
		for _, n := range counts {
			total += n
		}
		fmt.Fprintf(stdout, "Events: %d\n", total)
		for _, c := range []log.Category{
			log.CategoryRecord, log.CategoryFault,
			log.CategoryCapability, log.CategoryState,
		} {
			if counts[c] > 0 {
				fmt.Fprintf(stdout, "  %-10s %d\n", c, counts[c])
			}
		}
	}

	return exitSuccess
}

func parseLogArgs(args []string, stderr io.Writer) (*LogOptions, error) {
	opts := &LogOptions{}

	fs := flag.NewFlagSet("log", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	tid := fs.Int("tid", -1, "filter by terminus id (0-255)")
	fs.StringVar(&opts.PassID, "pass", "", "filter by decode pass id")
	category := fs.String("category", "", "filter by category (record, fault, capability, state)")
	fs.BoolVar(&opts.Stats, "stats", false, "show event counts instead of events")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *tid >= 0 {
		if *tid > 255 {
			return nil, fmt.Errorf("invalid tid: %d (must be 0-255)", *tid)
		}
		t := uint8(*tid)
		opts.TID = &t
	}

	if *category != "" {
		c, err := parseCategory(*category)
		if err != nil {
			return nil, err
		}
		opts.Category = &c
	}

	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one log file, got %d", fs.NArg())
	}
	opts.File = fs.Arg(0)

	return opts, nil
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "record":
		return log.CategoryRecord, nil
	case "fault":
		return log.CategoryFault, nil
	case "capability":
		return log.CategoryCapability, nil
	case "state":
		return log.CategoryState, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be record, fault, capability, or state)", s)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	pass := shortenPassID(event.PassID)

	fmt.Fprintf(w, "%s [tid:%d]", ts, event.TID)
	if pass != "" {
		fmt.Fprintf(w, " [pass:%s]", pass)
	}
	fmt.Fprintf(w, " %s\n", event.Category)

	switch {
	case event.Record != nil:
		fmt.Fprintf(w, "  [%d] handle=%d type=%s",
			event.Record.Index, event.Record.Handle, event.Record.Type)
		if event.Record.SensorID != 0 {
			fmt.Fprintf(w, " sensor=%d", event.Record.SensorID)
		}
		fmt.Fprintln(w)
	case event.Fault != nil:
		fmt.Fprintf(w, "  [%d] type=%s offset=%d\n",
			event.Fault.Index, event.Fault.Type, event.Fault.Offset)
		fmt.Fprintf(w, "  Reason: %s\n", event.Fault.Reason)
	case event.Capability != nil:
		fmt.Fprintf(w, "  Expected %d bytes, received %d\n",
			event.Capability.Expected, event.Capability.Received)
	case event.State != nil:
		fmt.Fprintf(w, "  %s", event.State.Name)
		if event.State.Detail != "" {
			fmt.Fprintf(w, " (%s)", event.State.Detail)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

// shortenPassID returns the first 8 characters of the pass ID.
func shortenPassID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func printLogUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: pmcp-pdr log [options] <file.plog>

View terminus diagnostic logs in human-readable format.

Options:
  --tid int          Filter by terminus id (0-255)
  --pass string      Filter by decode pass id
  --category string  Filter by category: record, fault, capability, state
  --stats            Show event counts instead of individual events

Examples:
  pmcp-pdr log terminus-9.plog
  pmcp-pdr log --category fault terminus-9.plog
  pmcp-pdr log --stats terminus-9.plog`)
}
