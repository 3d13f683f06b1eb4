package model

import (
	"time"

	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/interval"
)

// Booking is one reserved time range for a room on a calendar day. Bookings
// for the same (RoomID, Date) partition never overlap; the storage layer
// enforces that invariant on write.
type Booking struct {
	ID           string
	RoomID       string
	Date         string // YYYY-MM-DD
	Start        string // HH:MM
	End          string // HH:MM
	Name         string
	Email        string
	Department   string
	MeetingTitle string
	Notes        string
	CreatedAt    time.Time
}

func (b Booking) Interval() interval.Interval {
	return interval.Interval{Start: b.Start, End: b.End}
}
