// Package terminus models one addressable device (a "terminus") on a PMCP
// management bus: its capability bitmask, the raw Platform Descriptor
// Records it reported, and the typed sensor tables decoded from them.
//
// The package is decode-and-query only. A transport collaborator performs
// the bus transactions, hands the fetched capability bytes and PDR bytes
// to the Terminus, runs one decode pass, and marks the terminus
// initialized. Monitoring collaborators then query capability bits before
// issuing commands and look up display names by sensor id.
//
// # Concurrency
//
// Terminus does no internal locking and never blocks. Hosts running
// discovery and monitoring on different goroutines must serialize writers
// against readers: SetSupportedCommands against SupportsType and
// SupportsCommand, and SetPDRs/ParsePDRs/ClearDecoded against
// SensorAuxiliaryNames and the sensor table accessors. The usual
// discipline is one onboarding task per terminus, with queries starting
// only after Initialized is observed true.
package terminus
