package storage

import (
	"context"
	"time"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
)

// StoredCheck - A record of one validated message. The message text itself is never stored, and the sender is
// only kept as a keyed hash (see HashIdentifier).
type StoredCheck struct {
	CheckId        string                        `json:"check_id"`
	IdentifierHash string                        `json:"identifier_hash"`
	Language       string                        `json:"language"`
	Category       classification.Classification `json:"category"`
	Forwarded      bool                          `json:"forwarded"`
	CreatedAt      time.Time                     `json:"created_at"`
}

type PersistentStorage interface {
	Close() error

	InsertCheck(ctx context.Context, check *StoredCheck) error
	// GetCheck - returns nil (and no error) if the check doesn't exist.
	GetCheck(ctx context.Context, checkId string) (*StoredCheck, error)
	// DeleteChecksBefore - deletes checks created strictly before the given time, returning how many were deleted.
	DeleteChecksBefore(ctx context.Context, before time.Time) (int64, error)
	// CountChecksByCategory - counts checks created at or after the given time. Categories with no checks are
	// omitted.
	CountChecksByCategory(ctx context.Context, since time.Time) (map[classification.Classification]int64, error)
}
