package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pmcp-protocol/pmcp-go/pkg/pdr"
	"github.com/pmcp-protocol/pmcp-go/pkg/persistence"
	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

// DecodeOptions holds options for the decode command.
type DecodeOptions struct {
	Format   string // text, yaml
	Snapshot bool   // input is a JSON snapshot instead of a raw dump
	File     string
}

// decodedRecord is the per-record output of the decode command.
type decodedRecord struct {
	Index   int                       `yaml:"index"`
	Handle  uint32                    `yaml:"handle"`
	Type    string                    `yaml:"type"`
	Fault   string                    `yaml:"fault,omitempty"`
	Names   *pdr.SensorAuxiliaryNames `yaml:"auxiliaryNames,omitempty"`
	Numeric *pdr.NumericSensor        `yaml:"numericSensor,omitempty"`
	Compact *pdr.CompactNumericSensor `yaml:"compactNumericSensor,omitempty"`
}

// decodeOutput is the top-level output of the decode command.
type decodeOutput struct {
	File    string          `yaml:"file"`
	Records []decodedRecord `yaml:"records"`
	Faults  int             `yaml:"faults"`
}

// RunDecode executes the decode command with the given arguments.
// Returns the exit code.
func RunDecode(args []string, stdout, stderr io.Writer) int {
	opts, err := parseDecodeArgs(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			printDecodeUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printDecodeUsage(stderr)
		return exitCommandError
	}

	records, err := loadRecords(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	out := decodeRecords(opts.File, records)

	switch opts.Format {
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fmt.Fprint(stdout, string(data))
	default:
		writeDecodeText(stdout, out)
	}

	return exitSuccess
}

func parseDecodeArgs(args []string, stderr io.Writer) (*DecodeOptions, error) {
	opts := &DecodeOptions{}

	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	fs.StringVar(&opts.Format, "format", "text", "output format (text, yaml)")
	fs.BoolVar(&opts.Snapshot, "snapshot", false, "treat input as a JSON snapshot")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.Format != "text" && opts.Format != "yaml" {
		return nil, fmt.Errorf("invalid format: %s (must be text or yaml)", opts.Format)
	}

	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one input file, got %d", fs.NArg())
	}
	opts.File = fs.Arg(0)

	return opts, nil
}

// loadRecords reads the input file as either a raw concatenated record
// dump or a persisted snapshot.
func loadRecords(opts *DecodeOptions) ([][]byte, error) {
	if opts.Snapshot {
		snapshot, err := persistence.NewSnapshotStore(opts.File).Load()
		if err != nil {
			return nil, err
		}
		if snapshot == nil {
			return nil, fmt.Errorf("no snapshot at %s", opts.File)
		}
		return snapshot.PDRs, nil
	}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		return nil, err
	}
	return wire.Split(data)
}

func decodeRecords(file string, records [][]byte) *decodeOutput {
	out := &decodeOutput{File: file, Records: []decodedRecord{}}

	for i, raw := range records {
		entry := decodedRecord{Index: i}

		decoded, err := pdr.Parse(raw)
		if err != nil {
			entry.Fault = err.Error()
			if header, herr := wire.DecodeRecordHeader(raw); herr == nil {
				entry.Handle = header.Handle
				entry.Type = header.Type.String()
			}
			out.Faults++
			out.Records = append(out.Records, entry)
			continue
		}

		header := decoded.RecordHeader()
		entry.Handle = header.Handle
		entry.Type = header.Type.String()

		switch r := decoded.(type) {
		case *pdr.SensorAuxiliaryNames:
			entry.Names = r
		case *pdr.NumericSensor:
			entry.Numeric = r
		case *pdr.CompactNumericSensor:
			entry.Compact = r
		}

		out.Records = append(out.Records, entry)
	}

	return out
}

func writeDecodeText(w io.Writer, out *decodeOutput) {
	fmt.Fprintf(w, "File: %s\n", out.File)
	fmt.Fprintf(w, "Records: %d (%d faulted)\n", len(out.Records), out.Faults)

	for _, entry := range out.Records {
		fmt.Fprintf(w, "\n[%d] handle=%d type=%s\n", entry.Index, entry.Handle, entry.Type)
		switch {
		case entry.Fault != "":
			fmt.Fprintf(w, "    fault: %s\n", entry.Fault)
		case entry.Names != nil:
			fmt.Fprintf(w, "    sensor %d, %d sub-sensor(s)\n",
				entry.Names.SensorID, entry.Names.SensorCount)
			for i, names := range entry.Names.Names {
				for _, pair := range names {
					fmt.Fprintf(w, "    [%d] %s: %s\n", i, pair.Language, pair.Name)
				}
			}
		case entry.Numeric != nil:
			fmt.Fprintf(w, "    sensor %d, unit %s, resolution %g, offset %g\n",
				entry.Numeric.SensorID, entry.Numeric.BaseUnit,
				entry.Numeric.Resolution, entry.Numeric.Offset)
		case entry.Compact != nil:
			name := entry.Compact.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(w, "    sensor %d, unit %s, name %s\n",
				entry.Compact.SensorID, entry.Compact.BaseUnit, name)
		}
	}
}

func printDecodeUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: pmcp-pdr decode [options] <file>

Decode a binary PDR dump into typed records. Each record is decoded
independently; a corrupt record is reported as a fault without stopping
the rest of the dump.

Options:
  --format string   Output format: text, yaml (default "text")
  --snapshot        Treat the input as a JSON snapshot file

Examples:
  pmcp-pdr decode terminus-9.pdrs
  pmcp-pdr decode --format yaml terminus-9.pdrs
  pmcp-pdr decode --snapshot terminus-9.json`)
}
