// Package persistence caches the discovery results for a terminus between
// host restarts.
//
// A snapshot stores the capability bitmap and the raw PDRs exactly as the
// terminus reported them, so a host can rebuild its terminus model without
// re-running the full discovery exchange. Snapshots are JSON files with a
// CRC-16 checksum over the record bytes; a corrupt snapshot fails to load
// rather than feeding bad records into the decode pass.
package persistence
