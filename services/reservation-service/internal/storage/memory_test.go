package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/model"
)

func mkBooking(id, roomID, date, start, end string) model.Booking {
	return model.Booking{
		ID:           id,
		RoomID:       roomID,
		Date:         date,
		Start:        start,
		End:          end,
		Name:         "Ana",
		Email:        "ana@example.com",
		Department:   "Engineering",
		MeetingTitle: "Sync",
	}
}

func TestCreateBatchAllOrNothing(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.CreateBatch(ctx, []model.Booking{
		mkBooking("b1", "room-a", "2026-09-01", "10:00", "11:00"),
	}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	// Second candidate collides with the stored booking; the first must not
	// survive the rejection.
	err := repo.CreateBatch(ctx, []model.Booking{
		mkBooking("b2", "room-a", "2026-09-01", "08:00", "09:00"),
		mkBooking("b3", "room-a", "2026-09-01", "10:30", "11:30"),
	})
	if !IsConflict(err) {
		t.Fatalf("want conflict, got %v", err)
	}
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("want *ConflictError, got %T", err)
	}
	if ce.Existing.ID != "b1" {
		t.Fatalf("conflict should name the stored booking, got %q", ce.Existing.ID)
	}

	stored, err := repo.ListPartition(ctx, "room-a", "2026-09-01")
	if err != nil {
		t.Fatalf("list partition: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "b1" {
		t.Fatalf("partial batch persisted: %+v", stored)
	}
}

func TestPartitionsAreIndependent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	cases := []model.Booking{
		mkBooking("b1", "room-a", "2026-09-01", "10:00", "11:00"),
		mkBooking("b2", "room-b", "2026-09-01", "10:00", "11:00"),
		mkBooking("b3", "room-a", "2026-09-02", "10:00", "11:00"),
	}
	for _, b := range cases {
		if err := repo.CreateBatch(ctx, []model.Booking{b}); err != nil {
			t.Fatalf("booking %s should not conflict across partitions: %v", b.ID, err)
		}
	}
}

func TestConcurrentOverlappingBatches(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.CreateBatch(ctx, []model.Booking{
				mkBooking("c"+string(rune('1'+i)), "room-a", "2026-09-01", "10:00", "11:00"),
			})
		}(i)
	}
	wg.Wait()

	conflicts := 0
	for _, err := range errs {
		if IsConflict(err) {
			conflicts++
		} else if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if conflicts != 1 {
		t.Fatalf("want exactly one loser, got %d conflicts", conflicts)
	}

	stored, err := repo.ListPartition(ctx, "room-a", "2026-09-01")
	if err != nil {
		t.Fatalf("list partition: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("want 1 stored booking, got %d", len(stored))
	}
}

func TestDeleteUnknownAndRepeat(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Delete(ctx, "nope"); !IsNotFound(err) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	if err := repo.CreateBatch(ctx, []model.Booking{
		mkBooking("b1", "room-a", "2026-09-01", "10:00", "11:00"),
	}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	if err := repo.Delete(ctx, "b1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, "b1"); !IsNotFound(err) {
		t.Fatalf("repeat delete should be ErrNotFound, got %v", err)
	}

	// The freed slot is bookable again.
	if err := repo.CreateBatch(ctx, []model.Booking{
		mkBooking("b2", "room-a", "2026-09-01", "10:00", "11:00"),
	}); err != nil {
		t.Fatalf("rebooking freed slot: %v", err)
	}
}

func TestListFilters(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	seed := []model.Booking{
		mkBooking("b1", "room-a", "2026-09-01", "10:00", "11:00"),
		mkBooking("b2", "room-a", "2026-09-02", "10:00", "11:00"),
		mkBooking("b3", "room-b", "2026-09-01", "10:00", "11:00"),
	}
	for _, b := range seed {
		if err := repo.CreateBatch(ctx, []model.Booking{b}); err != nil {
			t.Fatalf("seed %s: %v", b.ID, err)
		}
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 3},
		{"by room", Filter{RoomID: "room-a"}, 2},
		{"by date", Filter{Date: "2026-09-01"}, 2},
		{"by room and date", Filter{RoomID: "room-a", Date: "2026-09-01"}, 1},
		{"no match", Filter{RoomID: "room-c"}, 0},
	}
	for _, tc := range tests {
		got, err := repo.List(ctx, tc.filter)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(got) != tc.want {
			t.Fatalf("%s: want %d bookings, got %d", tc.name, tc.want, len(got))
		}
	}
}
