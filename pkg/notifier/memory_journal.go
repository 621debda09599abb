package notifier

import (
	"context"
	"slices"
	"sync"

	"github.com/notifykit/notifykit/pkg/channel"
)

// MemoryJournal is an in-memory implementation of the Journal interface.
// Suitable for development and testing.
type MemoryJournal struct {
	deliveries []channel.Delivery
	mu         sync.RWMutex
}

// NewMemoryJournal creates an empty in-memory delivery journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (j *MemoryJournal) Append(ctx context.Context, d channel.Delivery) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.deliveries = append(j.deliveries, d)
	return nil
}

func (j *MemoryJournal) List(ctx context.Context) ([]channel.Delivery, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	// Return a copy to prevent external mutation of stored records
	return slices.Clone(j.deliveries), nil
}

func (j *MemoryJournal) CountForDestination(ctx context.Context, destination string) (int, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	count := 0
	for _, d := range j.deliveries {
		if d.Destination == destination {
			count++
		}
	}

	return count, nil
}
