package terminus

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pmcp-protocol/pmcp-go/pkg/log"
	"github.com/pmcp-protocol/pmcp-go/pkg/pdr"
	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

// TID is the bus address of a terminus, stable for the device's lifetime
// on the bus.
type TID uint8

// Terminus aggregates everything the host knows about one remote device:
// its TID, the message types and commands it supports, the raw PDRs
// fetched from it, and the sensor metadata decoded from those records.
type Terminus struct {
	tid TID

	supportedTypes TypeSet
	supportedCmds  CommandTable

	// pdrs holds the raw records as handed over by the transport
	// collaborator; validation is deferred to ParsePDRs.
	pdrs [][]byte

	numericSensors []*pdr.NumericSensor
	compactSensors []*pdr.CompactNumericSensor
	auxNames       []*pdr.SensorAuxiliaryNames

	initialized bool
	logger      log.Logger
}

// NewTerminus creates a terminus with the given TID and supported-type
// set. Diagnostics are discarded until SetLogger is called.
func NewTerminus(tid TID, supportedTypes TypeSet) *Terminus {
	return &Terminus{
		tid:            tid,
		supportedTypes: supportedTypes,
		logger:         log.NoopLogger{},
	}
}

// TID returns the terminus's bus address.
func (t *Terminus) TID() TID {
	return t.tid
}

// SetLogger installs the diagnostic event logger. A nil logger disables
// diagnostics.
func (t *Terminus) SetLogger(logger log.Logger) {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	t.logger = logger
}

// SupportsType reports whether the terminus supports the given message
// type. Types outside [0, 64) report false.
func (t *Terminus) SupportsType(typ uint8) bool {
	return t.supportedTypes.Has(typ)
}

// SupportsCommand reports whether the terminus supports the given command
// of the given message type. Out-of-range types and an unset table report
// false.
func (t *Terminus) SupportsCommand(typ, command uint8) bool {
	return t.supportedCmds.Supports(typ, command)
}

// SetSupportedCommands replaces the command capability bitmap. The buffer
// must be exactly wire.CommandMaskSize bytes; on mismatch the previous
// bitmap is preserved and ErrInvalidMaskSize is returned.
func (t *Terminus) SetSupportedCommands(mask []byte) error {
	if err := t.supportedCmds.Set(mask); err != nil {
		t.logger.Log(log.Event{
			Timestamp: time.Now(),
			TID:       uint8(t.tid),
			Category:  log.CategoryCapability,
			Capability: &log.CapabilityEvent{
				Expected: wire.CommandMaskSize,
				Received: len(mask),
			},
		})
		return err
	}
	return nil
}

// SetPDRs replaces the raw record store wholesale. Records are stored as
// handed over and validated only at decode time; previously decoded
// sensor tables are unaffected until the next ParsePDRs.
func (t *Terminus) SetPDRs(records [][]byte) {
	t.pdrs = make([][]byte, len(records))
	copy(t.pdrs, records)

	t.logger.Log(log.Event{
		Timestamp: time.Now(),
		TID:       uint8(t.tid),
		Category:  log.CategoryState,
		State: &log.StateEvent{
			Name:   log.StatePDRStoreReplaced,
			Detail: fmt.Sprintf("%d records", len(records)),
		},
	})
}

// RecordCount returns the number of raw records currently stored.
func (t *Terminus) RecordCount() int {
	return len(t.pdrs)
}

// ParsePDRs runs one decode pass over the stored records. Each record is
// decoded independently: malformed records are discarded whole and
// reported as fault events, and the pass always completes. Decoded
// results append to the sensor tables and the auxiliary-name index; call
// ClearDecoded first to rebuild instead of accumulate.
func (t *Terminus) ParsePDRs() {
	passID := uuid.NewString()

	for i, record := range t.pdrs {
		parsed, err := pdr.Parse(record)
		if err != nil {
			t.logFault(passID, i, err)
			continue
		}

		hdr := parsed.RecordHeader()
		var sensorID pdr.SensorID

		switch rec := parsed.(type) {
		case *pdr.NumericSensor:
			t.numericSensors = append(t.numericSensors, rec)
			sensorID = rec.SensorID
		case *pdr.CompactNumericSensor:
			t.compactSensors = append(t.compactSensors, rec)
			if names := rec.AuxiliaryNames(); names != nil {
				t.auxNames = append(t.auxNames, names)
			}
			sensorID = rec.SensorID
		case *pdr.SensorAuxiliaryNames:
			t.auxNames = append(t.auxNames, rec)
			sensorID = rec.SensorID
		case *pdr.Unknown:
			// Unrecognized types are skipped, not faulted.
		}

		t.logger.Log(log.Event{
			Timestamp: time.Now(),
			TID:       uint8(t.tid),
			PassID:    passID,
			Category:  log.CategoryRecord,
			Record: &log.RecordEvent{
				Index:    i,
				Handle:   hdr.Handle,
				Type:     hdr.Type,
				SensorID: uint16(sensorID),
			},
		})
	}
}

// logFault emits a fault event for one discarded record.
func (t *Terminus) logFault(passID string, index int, err error) {
	fault := &log.FaultEvent{Index: index, Reason: err.Error()}

	var decodeErr *pdr.DecodeError
	if errors.As(err, &decodeErr) {
		fault.Type = decodeErr.RecordType
		fault.Offset = decodeErr.Offset
		fault.Reason = decodeErr.Reason
	}

	t.logger.Log(log.Event{
		Timestamp: time.Now(),
		TID:       uint8(t.tid),
		PassID:    passID,
		Category:  log.CategoryFault,
		Fault:     fault,
	})
}

// ClearDecoded drops all decoded sensor tables and auxiliary names.
// Discovery owners call this before re-parsing a fresh record snapshot so
// a re-run replaces instead of duplicates. The raw record store and the
// capability bitmap are untouched.
func (t *Terminus) ClearDecoded() {
	t.numericSensors = nil
	t.compactSensors = nil
	t.auxNames = nil

	t.logger.Log(log.Event{
		Timestamp: time.Now(),
		TID:       uint8(t.tid),
		Category:  log.CategoryState,
		State:     &log.StateEvent{Name: log.StateDecodedCleared},
	})
}

// SensorAuxiliaryNames returns the first decoded name table for the given
// sensor id. The table is shared, not copied; treat it as read-only. A
// miss is a normal outcome and reports ok == false.
func (t *Terminus) SensorAuxiliaryNames(id pdr.SensorID) (names *pdr.SensorAuxiliaryNames, ok bool) {
	for _, n := range t.auxNames {
		if n.SensorID == id {
			return n, true
		}
	}
	return nil, false
}

// AuxiliaryNameCount returns the number of decoded name tables.
func (t *Terminus) AuxiliaryNameCount() int {
	return len(t.auxNames)
}

// NumericSensors returns the decoded numeric sensor definitions in record
// order. The returned slice is a copy; the definitions themselves are
// shared.
func (t *Terminus) NumericSensors() []*pdr.NumericSensor {
	out := make([]*pdr.NumericSensor, len(t.numericSensors))
	copy(out, t.numericSensors)
	return out
}

// CompactNumericSensors returns the decoded compact numeric sensor
// definitions in record order. The returned slice is a copy; the
// definitions themselves are shared.
func (t *Terminus) CompactNumericSensors() []*pdr.CompactNumericSensor {
	out := make([]*pdr.CompactNumericSensor, len(t.compactSensors))
	copy(out, t.compactSensors)
	return out
}

// Initialized reports whether onboarding has completed.
func (t *Terminus) Initialized() bool {
	return t.initialized
}

// SetInitialized records onboarding completion. The discovery collaborator
// sets this once capability and PDR discovery have finished.
func (t *Terminus) SetInitialized(v bool) {
	if v && !t.initialized {
		t.logger.Log(log.Event{
			Timestamp: time.Now(),
			TID:       uint8(t.tid),
			Category:  log.CategoryState,
			State:     &log.StateEvent{Name: log.StateInitialized},
		})
	}
	t.initialized = v
}
