package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/interval"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/model"
)

// ErrNotFound is returned by Delete for ids that do not exist, including ids
// that were already cancelled.
var ErrNotFound = errors.New("booking not found")

// ConflictError reports the first candidate that overlapped a stored booking.
// The whole batch it belonged to was rejected.
type ConflictError struct {
	Candidate interval.Interval
	Existing  model.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s already booked (%s by %s)", e.Candidate, e.Existing.Interval(), e.Existing.Name)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Filter narrows List results. Zero-value fields match everything.
type Filter struct {
	RoomID string
	Date   string
}

// Repository is the durable booking store. Implementations must make
// CreateBatch atomic with respect to concurrent batches on the same
// (room, date) partition: of two racing batches proposing overlapping
// intervals, at most one may persist.
type Repository interface {
	// List returns bookings matching the filter, in no guaranteed order.
	List(ctx context.Context, f Filter) ([]model.Booking, error)

	// ListPartition returns all bookings for one (room, date) partition.
	ListPartition(ctx context.Context, roomID, date string) ([]model.Booking, error)

	// CreateBatch persists all bookings or none. All bookings in one batch
	// share a partition. Returns *ConflictError when a candidate overlaps a
	// stored booking.
	CreateBatch(ctx context.Context, bookings []model.Booking) error

	// Delete removes a booking permanently. Returns ErrNotFound for unknown
	// ids.
	Delete(ctx context.Context, id string) error
}
