package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/availability"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/booking"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/catalog"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/interval"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/model"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/storage"
)

type BookingHandler struct {
	svc     *booking.Service
	catalog catalog.Provider
	logger  *slog.Logger
}

func NewBookingHandler(svc *booking.Service, catalogProvider catalog.Provider, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		svc:     svc,
		catalog: catalogProvider,
		logger:  logger,
	}
}

type slotDTO struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

type createBookingsRequest struct {
	RoomID       string    `json:"room_id"`
	Date         string    `json:"date"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	MeetingTitle string    `json:"meeting_title"`
	Notes        string    `json:"notes"`
	Slots        []slotDTO `json:"slots"`
}

type bookingItem struct {
	ID           string `json:"id"`
	RoomID       string `json:"room_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	MeetingTitle string `json:"meeting_title"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type createBookingsResponse struct {
	Bookings []bookingItem `json:"bookings"`
}

type conflictResponse struct {
	Error    string       `json:"error"`
	Slot     slotDTO      `json:"slot"`
	BookedBy *bookingItem `json:"booked_by,omitempty"`
}

type cancelBookingRequest struct {
	ID string `json:"id"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createBookingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	req.RoomID = strings.TrimSpace(req.RoomID)
	req.Date = strings.TrimSpace(req.Date)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	req.MeetingTitle = strings.TrimSpace(req.MeetingTitle)
	req.Notes = strings.TrimSpace(req.Notes)

	if req.RoomID == "" || req.Name == "" || req.Email == "" || req.Department == "" || req.MeetingTitle == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}
	if !strings.Contains(req.Email, "@") {
		http.Error(w, "invalid email", http.StatusBadRequest)
		return
	}
	if !validDate(req.Date) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if len(req.Slots) == 0 {
		http.Error(w, "at least one time slot is required", http.StatusBadRequest)
		return
	}

	slots := make([]interval.Interval, 0, len(req.Slots))
	for _, s := range req.Slots {
		iv, err := interval.Parse(strings.TrimSpace(s.Start), strings.TrimSpace(s.End))
		if err != nil {
			http.Error(w, "invalid time slot (times are HH:MM, start before end)", http.StatusBadRequest)
			return
		}
		slots = append(slots, iv)
	}

	// Catalog membership is a calling-layer guardrail, not a core invariant.
	// A catalog outage must not block bookings, so lookup failures pass.
	if known, err := h.roomKnown(r.Context(), req.RoomID); err == nil && !known {
		http.Error(w, "unknown room_id", http.StatusUnprocessableEntity)
		return
	}

	created, err := h.svc.Commit(r.Context(), booking.CommitRequest{
		RoomID:       req.RoomID,
		Date:         req.Date,
		Name:         req.Name,
		Email:        req.Email,
		Department:   req.Department,
		MeetingTitle: req.MeetingTitle,
		Notes:        req.Notes,
		Slots:        slots,
	})
	if err != nil {
		h.writeCommitError(w, err)
		return
	}

	items := make([]bookingItem, 0, len(created))
	for _, b := range created {
		items = append(items, toBookingItem(b))
	}
	writeJSON(w, http.StatusCreated, createBookingsResponse{Bookings: items})
}

func (h *BookingHandler) writeCommitError(w http.ResponseWriter, err error) {
	var conflict *storage.ConflictError
	switch {
	case errors.Is(err, booking.ErrEmptyRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, booking.ErrSelfConflict):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error":  "self_conflict",
			"detail": err.Error(),
		})
	case errors.As(err, &conflict):
		resp := conflictResponse{
			Error: "slot_occupied",
			Slot:  slotDTO{Start: conflict.Candidate.Start, End: conflict.Candidate.End},
		}
		if conflict.Existing.ID != "" {
			existing := toBookingItem(conflict.Existing)
			resp.BookedBy = &existing
		}
		writeJSON(w, http.StatusConflict, resp)
	default:
		h.logger.Error("commit failed", "err", err)
		http.Error(w, "booking storage unavailable", http.StatusServiceUnavailable)
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := storage.Filter{
		RoomID: strings.TrimSpace(r.URL.Query().Get("room_id")),
		Date:   strings.TrimSpace(r.URL.Query().Get("date")),
	}
	if filter.Date != "" && !validDate(filter.Date) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	bookings, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("list failed", "err", err)
		http.Error(w, "booking storage unavailable", http.StatusServiceUnavailable)
		return
	}

	items := make([]bookingItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, toBookingItem(b))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *BookingHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	roomID := strings.TrimSpace(q.Get("room_id"))
	date := strings.TrimSpace(q.Get("date"))
	if roomID == "" || !validDate(date) {
		http.Error(w, "room_id and date (YYYY-MM-DD) are required", http.StatusBadRequest)
		return
	}
	iv, err := interval.Parse(strings.TrimSpace(q.Get("start")), strings.TrimSpace(q.Get("end")))
	if err != nil {
		http.Error(w, "start and end must be HH:MM with start before end", http.StatusBadRequest)
		return
	}

	conflict, err := h.svc.HasConflict(r.Context(), roomID, date, iv, strings.TrimSpace(q.Get("exclude_id")))
	if err != nil {
		h.logger.Error("conflict check failed", "err", err)
		http.Error(w, "booking storage unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"conflict": conflict})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Cancel(r.Context(), req.ID); err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}
		h.logger.Error("cancel failed", "err", err)
		http.Error(w, "booking storage unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"id":     req.ID,
		"status": "cancelled",
	})
}

func (h *BookingHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rooms, err := h.catalog.Rooms(r.Context())
	if err != nil {
		h.logger.Error("room catalog fetch failed", "err", err)
		http.Error(w, "room catalog unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

// Slots returns the free grid for a room/date so clients can render a picker
// without re-implementing the overlap rule.
func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	roomID := strings.TrimSpace(q.Get("room_id"))
	date := strings.TrimSpace(q.Get("date"))
	if roomID == "" || !validDate(date) {
		http.Error(w, "room_id and date (YYYY-MM-DD) are required", http.StatusBadRequest)
		return
	}

	open := strings.TrimSpace(q.Get("day_start"))
	if open == "" {
		open = "08:00"
	}
	closeAt := strings.TrimSpace(q.Get("day_end"))
	if closeAt == "" {
		closeAt = "18:00"
	}
	slotMinutes := 60
	if v := strings.TrimSpace(q.Get("slot_minutes")); v != "" {
		n := 0
		for _, c := range v {
			if c < '0' || c > '9' {
				n = -1
				break
			}
			n = n*10 + int(c-'0')
		}
		if n <= 0 || n > 12*60 {
			http.Error(w, "invalid slot_minutes", http.StatusBadRequest)
			return
		}
		slotMinutes = n
	}

	booked, err := h.svc.List(r.Context(), storage.Filter{RoomID: roomID, Date: date})
	if err != nil {
		h.logger.Error("slots lookup failed", "err", err)
		http.Error(w, "booking storage unavailable", http.StatusServiceUnavailable)
		return
	}
	busy := make([]interval.Interval, 0, len(booked))
	for _, b := range booked {
		busy = append(busy, b.Interval())
	}

	free, err := availability.Grid(open, closeAt, slotMinutes, busy)
	if err != nil {
		http.Error(w, "invalid day window", http.StatusBadRequest)
		return
	}

	items := make([]slotDTO, 0, len(free))
	for _, s := range free {
		items = append(items, slotDTO{Start: s.Start, End: s.End})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *BookingHandler) roomKnown(ctx context.Context, roomID string) (bool, error) {
	rooms, err := h.catalog.Rooms(ctx)
	if err != nil {
		h.logger.Warn("room catalog lookup failed; skipping membership check", "err", err)
		return false, err
	}
	for _, room := range rooms {
		if room.ID == roomID {
			return true, nil
		}
	}
	return false, nil
}

func toBookingItem(b model.Booking) bookingItem {
	return bookingItem{
		ID:           b.ID,
		RoomID:       b.RoomID,
		Date:         b.Date,
		StartTime:    b.Start,
		EndTime:      b.End,
		Name:         b.Name,
		Email:        b.Email,
		Department:   b.Department,
		MeetingTitle: b.MeetingTitle,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func validDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
