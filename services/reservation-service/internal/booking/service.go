// Package booking owns the reservation lifecycle: batch commits with
// conflict resolution, cancellation, and conflict queries. The authoritative
// check-then-insert runs inside the repository so it is atomic per
// (room, date) partition; everything here validates the request before that
// point and never retries on its own.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/interval"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/model"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/storage"
)

var (
	// ErrEmptyRequest rejects commits with no candidate intervals.
	ErrEmptyRequest = errors.New("no time slots requested")

	// ErrSelfConflict rejects commits whose own candidates overlap each
	// other. Adjacent candidates (one ends where the next starts) are fine.
	ErrSelfConflict = errors.New("requested slots overlap each other")
)

type Service struct {
	repo   storage.Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo storage.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CommitRequest proposes one or more intervals for a single (room, date)
// partition. RoomID is treated as an opaque key; catalog membership is the
// caller's concern.
type CommitRequest struct {
	RoomID       string
	Date         string
	Name         string
	Email        string
	Department   string
	MeetingTitle string
	Notes        string
	Slots        []interval.Interval
}

// Commit persists every candidate or none of them. On success it returns the
// created bookings with ids and creation timestamps assigned.
func (s *Service) Commit(ctx context.Context, req CommitRequest) ([]model.Booking, error) {
	if len(req.Slots) == 0 {
		return nil, ErrEmptyRequest
	}
	for i := 0; i < len(req.Slots); i++ {
		for j := i + 1; j < len(req.Slots); j++ {
			if req.Slots[i].Overlaps(req.Slots[j]) {
				return nil, fmt.Errorf("%w: %s and %s", ErrSelfConflict, req.Slots[i], req.Slots[j])
			}
		}
	}

	createdAt := s.now()
	bookings := make([]model.Booking, 0, len(req.Slots))
	for _, slot := range req.Slots {
		bookings = append(bookings, model.Booking{
			ID:           uuid.NewString(),
			RoomID:       req.RoomID,
			Date:         req.Date,
			Start:        slot.Start,
			End:          slot.End,
			Name:         req.Name,
			Email:        req.Email,
			Department:   req.Department,
			MeetingTitle: req.MeetingTitle,
			Notes:        req.Notes,
			CreatedAt:    createdAt,
		})
	}

	if err := s.repo.CreateBatch(ctx, bookings); err != nil {
		return nil, err
	}

	s.logger.Info("bookings committed",
		"room_id", req.RoomID,
		"date", req.Date,
		"count", len(bookings),
	)
	return bookings, nil
}

// HasConflict reports whether iv overlaps any stored booking in the
// partition, skipping excludeID when given. Pure query.
func (s *Service) HasConflict(ctx context.Context, roomID, date string, iv interval.Interval, excludeID string) (bool, error) {
	stored, err := s.repo.ListPartition(ctx, roomID, date)
	if err != nil {
		return false, err
	}
	for _, b := range stored {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if iv.Overlaps(b.Interval()) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) List(ctx context.Context, f storage.Filter) ([]model.Booking, error) {
	return s.repo.List(ctx, f)
}

// Cancel removes the booking permanently. Unknown ids fail with
// storage.ErrNotFound, including repeat cancellations.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("booking cancelled", "booking_id", id)
	return nil
}
