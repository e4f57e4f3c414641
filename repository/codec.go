package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fastygo/catalog/domain"
)

// ErrNilSnapshot is returned when a driver is asked to save nothing.
var ErrNilSnapshot = errors.New("snapshot is nil")

// EncodeSnapshot renders the document every driver persists.
func EncodeSnapshot(snapshot *domain.Snapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}
	snapshot.Normalize()
	return json.MarshalIndent(snapshot, "", "  ")
}

// DecodeSnapshot parses a persisted document. Malformed input is an error,
// never a silently empty dataset.
func DecodeSnapshot(data []byte) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	snapshot.Normalize()
	return &snapshot, nil
}
