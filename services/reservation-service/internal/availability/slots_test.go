package availability

import (
	"testing"

	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/interval"
)

func TestGridEmptyDay(t *testing.T) {
	slots, err := Grid("09:00", "12:00", 60, nil)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	want := []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}
	if len(slots) != len(want) {
		t.Fatalf("want %d slots, got %d", len(want), len(slots))
	}
	for i, s := range slots {
		if s.String() != want[i] {
			t.Fatalf("slot %d: want %s, got %s", i, want[i], s)
		}
	}
}

func TestGridSkipsBusySlots(t *testing.T) {
	busy := []interval.Interval{{Start: "10:30", End: "11:30"}}
	slots, err := Grid("09:00", "13:00", 60, busy)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	// 10:00-11:00 and 11:00-12:00 both overlap the busy interval.
	want := []string{"09:00-10:00", "12:00-13:00"}
	if len(slots) != len(want) {
		t.Fatalf("want %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i, s := range slots {
		if s.String() != want[i] {
			t.Fatalf("slot %d: want %s, got %s", i, want[i], s)
		}
	}
}

func TestGridTouchingBusyIntervalKeepsSlot(t *testing.T) {
	busy := []interval.Interval{{Start: "10:00", End: "11:00"}}
	slots, err := Grid("09:00", "12:00", 60, busy)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	want := []string{"09:00-10:00", "11:00-12:00"}
	if len(slots) != len(want) {
		t.Fatalf("touching slots should stay free, got %v", slots)
	}
}

func TestGridDropsPartialTrailingSlot(t *testing.T) {
	slots, err := Grid("09:00", "10:30", 60, nil)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if len(slots) != 1 || slots[0].String() != "09:00-10:00" {
		t.Fatalf("want only the full slot, got %v", slots)
	}
}

func TestGridInvalidWindow(t *testing.T) {
	if _, err := Grid("12:00", "09:00", 60, nil); err == nil {
		t.Fatal("inverted window should fail")
	}
	if _, err := Grid("9:00", "12:00", 60, nil); err == nil {
		t.Fatal("unpadded clock should fail")
	}
	if _, err := Grid("09:00", "12:00", 0, nil); err == nil {
		t.Fatal("zero slot length should fail")
	}
}
