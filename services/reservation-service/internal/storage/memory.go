package storage

import (
	"context"
	"sync"

	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/model"
)

// MemoryRepository keeps bookings in process memory. It backs tests and local
// development without Postgres. A single lock covers all partitions; the
// serializability contract only requires per-partition mutual exclusion, so
// coarser locking is fine at this scale.
type MemoryRepository struct {
	mu          sync.RWMutex
	byPartition map[string][]model.Booking
	partitionOf map[string]string // booking id -> partition key
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byPartition: make(map[string][]model.Booking),
		partitionOf: make(map[string]string),
	}
}

func partitionKey(roomID, date string) string {
	return roomID + "|" + date
}

func (r *MemoryRepository) List(ctx context.Context, f Filter) ([]model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Booking
	for _, bookings := range r.byPartition {
		for _, b := range bookings {
			if f.RoomID != "" && b.RoomID != f.RoomID {
				continue
			}
			if f.Date != "" && b.Date != f.Date {
				continue
			}
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListPartition(ctx context.Context, roomID, date string) ([]model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byPartition[partitionKey(roomID, date)]
	out := make([]model.Booking, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *MemoryRepository) CreateBatch(ctx context.Context, bookings []model.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(bookings) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check the whole batch against stored state before writing anything,
	// so a conflict on the last candidate leaves no partial batch behind.
	for _, candidate := range bookings {
		stored := r.byPartition[partitionKey(candidate.RoomID, candidate.Date)]
		for _, existing := range stored {
			if candidate.Interval().Overlaps(existing.Interval()) {
				return &ConflictError{Candidate: candidate.Interval(), Existing: existing}
			}
		}
	}

	for _, b := range bookings {
		key := partitionKey(b.RoomID, b.Date)
		r.byPartition[key] = append(r.byPartition[key], b)
		r.partitionOf[b.ID] = key
	}
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.partitionOf[id]
	if !ok {
		return ErrNotFound
	}
	stored := r.byPartition[key]
	for i, b := range stored {
		if b.ID == id {
			r.byPartition[key] = append(stored[:i], stored[i+1:]...)
			break
		}
	}
	delete(r.partitionOf, id)
	return nil
}

var _ Repository = (*MemoryRepository)(nil)
