// Package log provides structured decode diagnostics for the PMCP
// terminus model.
//
// The terminus core never fails outright on malformed input: bad records
// are discarded and described as events to an injected Logger. This
// package defines that Logger interface and the Event model, decoupled
// from any specific logging backend. It is separate from operational
// logging (slog) - the event stream is a complete machine-readable trace
// of what a decode pass accepted and rejected.
//
// # Basic Usage
//
// Hosts configure diagnostics by providing a Logger implementation:
//
//	// For development: log to console via slog
//	term.SetLogger(log.NewSlogAdapter(slog.Default()))
//
//	// For production: write to binary file
//	l, _ := log.NewFileLogger("/var/log/pmcp/terminus-9.plog")
//	term.SetLogger(l)
//
//	// Both: use MultiLogger
//	term.SetLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    l,
//	))
//
// # Event Categories
//
//   - Record: a record decoded successfully during a pass
//   - Fault: a record was discarded (truncated, overrunning counts)
//   - Capability: a capability bitmap update was rejected
//   - State: terminus state changed (store replaced, index cleared,
//     onboarding complete)
//
// # File Format
//
// Log files use CBOR encoding with .plog extension. The pmcp-pdr CLI tool
// provides viewing and filtering.
package log
