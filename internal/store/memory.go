package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
)

// Verify interface compliance at compile time
var _ MemoryStateStore = (*MemoryStore)(nil)

// stateKey identifies one (learner, item) record.
type stateKey struct {
	userID uuid.UUID
	itemID uuid.UUID
}

// versionedState is the stored form of a record: a private copy of the
// state plus its CAS version.
type versionedState struct {
	state   domain.VocabularyMemoryState
	version int64
}

// MemoryStore is an in-memory MemoryStateStore. It is safe for concurrent
// use; the map is guarded by a mutex and every record is copied on the way
// in and out, so callers never share memory with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[stateKey]versionedState
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[stateKey]versionedState),
	}
}

// Get implements MemoryStateStore.Get.
func (m *MemoryStore) Get(
	ctx context.Context,
	userID, itemID uuid.UUID,
) (*domain.VocabularyMemoryState, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.states[stateKey{userID: userID, itemID: itemID}]
	if !ok {
		return nil, 0, ErrStateNotFound
	}

	state := entry.state
	return &state, entry.version, nil
}

// Save implements MemoryStateStore.Save with compare-and-swap semantics.
func (m *MemoryStore) Save(
	ctx context.Context,
	state *domain.VocabularyMemoryState,
	version int64,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if state == nil {
		return fmt.Errorf("%w: state cannot be nil", ErrInvalidEntity)
	}
	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}

	key := stateKey{userID: state.UserID, itemID: state.ItemID}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.states[key]

	if version == 0 {
		if exists {
			return ErrVersionConflict
		}
		m.states[key] = versionedState{state: *state, version: 1}
		return nil
	}

	if !exists || current.version != version {
		return ErrVersionConflict
	}

	m.states[key] = versionedState{state: *state, version: version + 1}
	return nil
}

// ListDue implements MemoryStateStore.ListDue. Ordering mirrors review
// queue priority: never-reviewed items first, then lower ease factor, then
// earlier due time.
func (m *MemoryStore) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.VocabularyMemoryState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	due := make([]*domain.VocabularyMemoryState, 0)
	for key, entry := range m.states {
		if key.userID != userID {
			continue
		}
		if !entry.state.IsDue(now) {
			continue
		}
		state := entry.state
		due = append(due, &state)
	}
	m.mu.RUnlock()

	sort.Slice(due, func(i, j int) bool {
		iNew := due[i].LastReviewedAt.IsZero()
		jNew := due[j].LastReviewedAt.IsZero()
		if iNew != jNew {
			return iNew
		}
		if due[i].EaseFactor != due[j].EaseFactor {
			return due[i].EaseFactor < due[j].EaseFactor
		}
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	return due, nil
}

// Delete implements MemoryStateStore.Delete.
func (m *MemoryStore) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := stateKey{userID: userID, itemID: itemID}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.states[key]; !ok {
		return ErrStateNotFound
	}

	delete(m.states, key)
	return nil
}
