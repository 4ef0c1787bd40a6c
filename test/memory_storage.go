package test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
	"github.com/neha-maurya01/SahaayAI/storage"
	"github.com/stretchr/testify/assert"
)

var SimulatedError = errors.New("simulated error")

// ErrorCheckId - GetCheck returns SimulatedError for this ID.
const ErrorCheckId = "ERROR"

// ErrorLanguage - InsertCheck returns SimulatedError for checks in this language.
const ErrorLanguage = "error"

type MemoryStorage struct {
	t      *testing.T
	lock   sync.Mutex
	checks map[string]*storage.StoredCheck
}

func NewMemoryStorage(t *testing.T) *MemoryStorage {
	return &MemoryStorage{
		t:      t,
		checks: make(map[string]*storage.StoredCheck),
	}
}

func (m *MemoryStorage) Close() error {
	// no-op
	return nil
}

func (m *MemoryStorage) InsertCheck(ctx context.Context, check *storage.StoredCheck) error {
	assert.NotNil(m.t, ctx, "context is required")
	assert.NotEmpty(m.t, check.CheckId, "check ID is required")

	if check.Language == ErrorLanguage {
		return SimulatedError
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	if _, exists := m.checks[check.CheckId]; exists {
		return errors.New("duplicate check ID")
	}
	c := *check
	m.checks[check.CheckId] = &c
	return nil
}

func (m *MemoryStorage) GetCheck(ctx context.Context, checkId string) (*storage.StoredCheck, error) {
	assert.NotNil(m.t, ctx, "context is required")

	if checkId == ErrorCheckId {
		return nil, SimulatedError
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	c, ok := m.checks[checkId]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *MemoryStorage) DeleteChecksBefore(ctx context.Context, before time.Time) (int64, error) {
	assert.NotNil(m.t, ctx, "context is required")

	m.lock.Lock()
	defer m.lock.Unlock()
	deleted := int64(0)
	for id, c := range m.checks {
		if c.CreatedAt.Before(before) {
			delete(m.checks, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MemoryStorage) CountChecksByCategory(ctx context.Context, since time.Time) (map[classification.Classification]int64, error) {
	assert.NotNil(m.t, ctx, "context is required")

	m.lock.Lock()
	defer m.lock.Unlock()
	counts := make(map[classification.Classification]int64)
	for _, c := range m.checks {
		if !c.CreatedAt.Before(since) {
			counts[c.Category]++
		}
	}
	return counts, nil
}

// Checks - Returns a copy of every stored check, in no particular order.
func (m *MemoryStorage) Checks() []*storage.StoredCheck {
	m.lock.Lock()
	defer m.lock.Unlock()
	checks := make([]*storage.StoredCheck, 0, len(m.checks))
	for _, c := range m.checks {
		copied := *c
		checks = append(checks, &copied)
	}
	return checks
}
