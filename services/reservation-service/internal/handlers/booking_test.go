package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/booking"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/catalog"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/storage"
)

func newTestHandler(t *testing.T) *BookingHandler {
	t.Helper()
	repo := storage.NewMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider, err := catalog.NewStaticProvider("")
	if err != nil {
		t.Fatalf("static provider: %v", err)
	}
	return NewBookingHandler(booking.NewService(repo, logger), provider, logger)
}

func postJSON(t *testing.T, h http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func validCreateBody() map[string]any {
	return map[string]any{
		"room_id":       "tspi-east",
		"date":          "2026-09-01",
		"name":          "Ana Reyes",
		"email":         "ana@example.com",
		"department":    "Engineering",
		"meeting_title": "Sprint planning",
		"slots": []map[string]string{
			{"start_time": "10:00", "end_time": "11:00"},
		},
	}
}

func TestCreateBooking(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.Create, "/api/v1/bookings", validCreateBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp createBookingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Bookings) != 1 {
		t.Fatalf("want 1 booking, got %d", len(resp.Bookings))
	}
	b := resp.Bookings[0]
	if b.ID == "" || b.StartTime != "10:00" || b.EndTime != "11:00" || b.CreatedAt == "" {
		t.Fatalf("incomplete booking in response: %+v", b)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		mutate func(m map[string]any)
		want   int
	}{
		{"missing name", func(m map[string]any) { m["name"] = "" }, http.StatusBadRequest},
		{"bad email", func(m map[string]any) { m["email"] = "not-an-email" }, http.StatusBadRequest},
		{"bad date", func(m map[string]any) { m["date"] = "09/01/2026" }, http.StatusBadRequest},
		{"no slots", func(m map[string]any) { m["slots"] = []map[string]string{} }, http.StatusBadRequest},
		{"unpadded clock", func(m map[string]any) {
			m["slots"] = []map[string]string{{"start_time": "9:00", "end_time": "10:00"}}
		}, http.StatusBadRequest},
		{"inverted slot", func(m map[string]any) {
			m["slots"] = []map[string]string{{"start_time": "11:00", "end_time": "10:00"}}
		}, http.StatusBadRequest},
		{"zero length slot", func(m map[string]any) {
			m["slots"] = []map[string]string{{"start_time": "10:00", "end_time": "10:00"}}
		}, http.StatusBadRequest},
		{"unknown room", func(m map[string]any) { m["room_id"] = "no-such-room" }, http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		body := validCreateBody()
		tc.mutate(body)
		rec := postJSON(t, h.Create, "/api/v1/bookings", body)
		if rec.Code != tc.want {
			t.Fatalf("%s: want %d, got %d: %s", tc.name, tc.want, rec.Code, rec.Body.String())
		}
	}
}

func TestCreateBookingSlotOccupied(t *testing.T) {
	h := newTestHandler(t)

	if rec := postJSON(t, h.Create, "/api/v1/bookings", validCreateBody()); rec.Code != http.StatusCreated {
		t.Fatalf("seed booking: %d %s", rec.Code, rec.Body.String())
	}

	body := validCreateBody()
	body["name"] = "Ben Cruz"
	body["slots"] = []map[string]string{{"start_time": "10:30", "end_time": "11:30"}}
	rec := postJSON(t, h.Create, "/api/v1/bookings", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp conflictResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode conflict body: %v", err)
	}
	if resp.Error != "slot_occupied" {
		t.Fatalf("want slot_occupied, got %q", resp.Error)
	}
	if resp.BookedBy == nil || resp.BookedBy.Name != "Ana Reyes" {
		t.Fatalf("conflict should name the existing booking, got %+v", resp.BookedBy)
	}
}

func TestCreateBookingAdjacentSlotAllowed(t *testing.T) {
	h := newTestHandler(t)

	if rec := postJSON(t, h.Create, "/api/v1/bookings", validCreateBody()); rec.Code != http.StatusCreated {
		t.Fatalf("seed booking: %d", rec.Code)
	}

	body := validCreateBody()
	body["slots"] = []map[string]string{{"start_time": "11:00", "end_time": "12:00"}}
	rec := postJSON(t, h.Create, "/api/v1/bookings", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("touching slot should book: %d %s", rec.Code, rec.Body.String())
	}
}

func TestCreateBookingSelfConflict(t *testing.T) {
	h := newTestHandler(t)

	body := validCreateBody()
	body["slots"] = []map[string]string{
		{"start_time": "10:00", "end_time": "11:00"},
		{"start_time": "10:30", "end_time": "11:30"},
	}
	rec := postJSON(t, h.Create, "/api/v1/bookings", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["error"] != "self_conflict" {
		t.Fatalf("want self_conflict, got %q", resp["error"])
	}
}

func TestConflictCheck(t *testing.T) {
	h := newTestHandler(t)

	if rec := postJSON(t, h.Create, "/api/v1/bookings", validCreateBody()); rec.Code != http.StatusCreated {
		t.Fatalf("seed booking: %d", rec.Code)
	}

	check := func(t *testing.T, query string) (int, bool) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/conflict?"+query, nil)
		rec := httptest.NewRecorder()
		h.Check(rec, req)
		if rec.Code != http.StatusOK {
			return rec.Code, false
		}
		var resp map[string]bool
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		return rec.Code, resp["conflict"]
	}

	if _, conflict := check(t, "room_id=tspi-east&date=2026-09-01&start=10:30&end=11:30"); !conflict {
		t.Fatal("overlapping interval should report a conflict")
	}
	if _, conflict := check(t, "room_id=tspi-east&date=2026-09-01&start=11:00&end=12:00"); conflict {
		t.Fatal("touching interval should be free")
	}
	if _, conflict := check(t, "room_id=powerchina-east&date=2026-09-01&start=10:30&end=11:30"); conflict {
		t.Fatal("other room should be free")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/conflict?room_id=tspi-east&date=2026-09-01&start=25:00&end=26:00", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad clock should 400, got %d", rec.Code)
	}
}

func TestConflictCheckExcludeID(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.Create, "/api/v1/bookings", validCreateBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed booking: %d", rec.Code)
	}
	var created createBookingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	id := created.Bookings[0].ID

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/bookings/conflict?room_id=tspi-east&date=2026-09-01&start=10:00&end=11:00&exclude_id="+id, nil)
	out := httptest.NewRecorder()
	h.Check(out, req)
	if out.Code != http.StatusOK {
		t.Fatalf("check: %d", out.Code)
	}
	var resp map[string]bool
	if err := json.Unmarshal(out.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["conflict"] {
		t.Fatal("excluding the only overlapping booking should report free")
	}
}

func TestCancelBooking(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.Create, "/api/v1/bookings", validCreateBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed booking: %d", rec.Code)
	}
	var created createBookingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	id := created.Bookings[0].ID

	if out := postJSON(t, h.Cancel, "/api/v1/bookings/cancel", map[string]string{"id": id}); out.Code != http.StatusOK {
		t.Fatalf("cancel: %d %s", out.Code, out.Body.String())
	}
	if out := postJSON(t, h.Cancel, "/api/v1/bookings/cancel", map[string]string{"id": id}); out.Code != http.StatusNotFound {
		t.Fatalf("repeat cancel should 404, got %d", out.Code)
	}
	if out := postJSON(t, h.Cancel, "/api/v1/bookings/cancel", map[string]string{"id": ""}); out.Code != http.StatusBadRequest {
		t.Fatalf("empty id should 400, got %d", out.Code)
	}

	// The freed slot is immediately rebookable.
	if out := postJSON(t, h.Create, "/api/v1/bookings", validCreateBody()); out.Code != http.StatusCreated {
		t.Fatalf("rebooking freed slot: %d %s", out.Code, out.Body.String())
	}
}

func TestListBookings(t *testing.T) {
	h := newTestHandler(t)

	first := validCreateBody()
	if rec := postJSON(t, h.Create, "/api/v1/bookings", first); rec.Code != http.StatusCreated {
		t.Fatalf("seed booking: %d", rec.Code)
	}
	second := validCreateBody()
	second["room_id"] = "powerchina-east"
	if rec := postJSON(t, h.Create, "/api/v1/bookings", second); rec.Code != http.StatusCreated {
		t.Fatalf("seed booking: %d", rec.Code)
	}

	list := func(t *testing.T, query string) []bookingItem {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings"+query, nil)
		rec := httptest.NewRecorder()
		h.List(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("list %q: %d", query, rec.Code)
		}
		var items []bookingItem
		if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		return items
	}

	if got := list(t, ""); len(got) != 2 {
		t.Fatalf("unfiltered list: want 2, got %d", len(got))
	}
	if got := list(t, "?room_id=tspi-east"); len(got) != 1 {
		t.Fatalf("room filter: want 1, got %d", len(got))
	}
	if got := list(t, "?room_id=tspi-east&date=2026-12-25"); len(got) != 0 {
		t.Fatalf("non-matching date: want 0, got %d", len(got))
	}
}

func TestRooms(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	rec := httptest.NewRecorder()
	h.Rooms(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("rooms: %d", rec.Code)
	}
	var rooms []catalog.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("decode rooms: %v", err)
	}
	if len(rooms) != 3 {
		t.Fatalf("want 3 default rooms, got %d", len(rooms))
	}
}

func TestSlots(t *testing.T) {
	h := newTestHandler(t)

	if rec := postJSON(t, h.Create, "/api/v1/bookings", validCreateBody()); rec.Code != http.StatusCreated {
		t.Fatalf("seed booking: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/slots?room_id=tspi-east&date=2026-09-01&day_start=09:00&day_end=12:00", nil)
	rec := httptest.NewRecorder()
	h.Slots(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("slots: %d %s", rec.Code, rec.Body.String())
	}
	var slots []slotDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &slots); err != nil {
		t.Fatalf("decode slots: %v", err)
	}
	// 10:00-11:00 is booked, leaving 09:00 and 11:00.
	if len(slots) != 2 || slots[0].Start != "09:00" || slots[1].Start != "11:00" {
		t.Fatalf("unexpected free grid: %+v", slots)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/slots?room_id=tspi-east", nil)
	rec = httptest.NewRecorder()
	h.Slots(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing date should 400, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d", rec.Code)
	}
}
