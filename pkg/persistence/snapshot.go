package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sigurn/crc16"
)

// SnapshotVersion is the current version of the snapshot file format.
const SnapshotVersion = 1

// ErrChecksumMismatch reports a snapshot whose record bytes do not match
// the stored checksum.
var ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

// ErrVersionMismatch reports a snapshot written by an incompatible format
// version.
var ErrVersionMismatch = errors.New("snapshot version mismatch")

// checksumTable is the CRC-16/CCITT-FALSE table used for snapshot
// integrity.
var checksumTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// TerminusSnapshot is the persisted discovery state of one terminus.
type TerminusSnapshot struct {
	// Version is the snapshot file format version.
	Version int `json:"version"`

	// SavedAt is when the snapshot was written.
	SavedAt time.Time `json:"saved_at"`

	// TID is the terminus's bus address.
	TID uint8 `json:"tid"`

	// SupportedTypes is the 64-bit supported-type set.
	SupportedTypes uint64 `json:"supported_types"`

	// SupportedCommands is the raw capability bitmap, empty if discovery
	// never fetched one.
	SupportedCommands []byte `json:"supported_commands,omitempty"`

	// PDRs are the raw records in fetch order.
	PDRs [][]byte `json:"pdrs,omitempty"`

	// Checksum is the CRC-16 over SupportedCommands and all record bytes.
	Checksum uint16 `json:"checksum"`
}

// checksum computes the CRC-16 over the snapshot's binary content.
func (s *TerminusSnapshot) checksum() uint16 {
	sum := crc16.Init(checksumTable)
	sum = crc16.Update(sum, s.SupportedCommands, checksumTable)
	for _, record := range s.PDRs {
		sum = crc16.Update(sum, record, checksumTable)
	}
	return crc16.Complete(sum, checksumTable)
}

// SnapshotStore manages persistence of terminus snapshots to a JSON file.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotStore creates a snapshot store backed by the given path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Save persists the snapshot to disk, filling in Version, SavedAt and
// Checksum.
func (s *SnapshotStore) Save(snapshot *TerminusSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	snapshot.Version = SnapshotVersion
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now()
	}
	snapshot.Checksum = snapshot.checksum()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the snapshot from disk and verifies its checksum.
// Returns nil, nil if the file doesn't exist (no cached discovery).
func (s *SnapshotStore) Load() (*TerminusSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snapshot := &TerminusSnapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, err
	}

	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrVersionMismatch, snapshot.Version, SnapshotVersion)
	}
	if got := snapshot.checksum(); got != snapshot.Checksum {
		return nil, fmt.Errorf("%w: got %#04x, want %#04x",
			ErrChecksumMismatch, got, snapshot.Checksum)
	}

	return snapshot, nil
}

// Clear removes the snapshot file.
func (s *SnapshotStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
