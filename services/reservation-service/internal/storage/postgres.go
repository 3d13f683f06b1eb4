package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tspi-facilities/roomreserve/libs/db"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/model"
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/outbox"
)

const bookingColumns = `id, room_id, date, start_time, end_time, name, email, department, meeting_title, COALESCE(notes, ''), created_at`

// PostgresRepository stores bookings in Postgres. Writes take a per-partition
// advisory lock inside the transaction, so concurrent batches on the same
// (room, date) serialize and the conflict check-then-insert is atomic. The
// bookings_no_overlap exclusion constraint backs the same invariant at the
// schema level. Outbox events, when configured, commit in the same
// transaction as the rows they describe.
type PostgresRepository struct {
	pool   *db.Pool
	outbox *outbox.Repository // nil disables event emission
}

func NewPostgresRepository(pool *db.Pool, outboxRepo *outbox.Repository) *PostgresRepository {
	return &PostgresRepository{pool: pool, outbox: outboxRepo}
}

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var (
		args  []any
		where string
	)
	if f.RoomID != "" {
		args = append(args, f.RoomID)
		where = ` WHERE room_id = $1`
	}
	if f.Date != "" {
		args = append(args, f.Date)
		if where == "" {
			where = ` WHERE date = $1`
		} else {
			where += ` AND date = $2`
		}
	}

	rows, err := r.pool.Query(ctx, query+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *PostgresRepository) ListPartition(ctx context.Context, roomID, date string) ([]model.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE room_id = $1 AND date = $2
	`, roomID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *PostgresRepository) CreateBatch(ctx context.Context, bookings []model.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Serialize against other writers on this partition for the rest of the
	// transaction. All bookings in a batch share (room_id, date).
	if _, err := tx.Exec(ctx, `
		SELECT pg_advisory_xact_lock(hashtextextended($1, 0))
	`, bookings[0].RoomID+"/"+bookings[0].Date); err != nil {
		return err
	}

	for _, candidate := range bookings {
		var existing model.Booking
		err := tx.QueryRow(ctx, `
			SELECT `+bookingColumns+`
			FROM bookings
			WHERE room_id = $1 AND date = $2 AND start_time < $4 AND end_time > $3
			LIMIT 1
		`, candidate.RoomID, candidate.Date, candidate.Start, candidate.End).Scan(
			&existing.ID,
			&existing.RoomID,
			&existing.Date,
			&existing.Start,
			&existing.End,
			&existing.Name,
			&existing.Email,
			&existing.Department,
			&existing.MeetingTitle,
			&existing.Notes,
			&existing.CreatedAt,
		)
		if err == nil {
			return &ConflictError{Candidate: candidate.Interval(), Existing: existing}
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
	}

	for _, b := range bookings {
		if _, err := tx.Exec(ctx, `
			INSERT INTO bookings
				(id, room_id, date, start_time, end_time, name, email, department, meeting_title, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, b.ID, b.RoomID, b.Date, b.Start, b.End, b.Name, b.Email, b.Department, b.MeetingTitle, b.Notes, b.CreatedAt); err != nil {
			if isExclusionViolation(err) {
				return &ConflictError{Candidate: b.Interval()}
			}
			return err
		}
		if err := r.insertCreatedEvent(ctx, tx, b); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		if isExclusionViolation(err) {
			return &ConflictError{Candidate: bookings[0].Interval()}
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var b model.Booking
	err = tx.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(
		&b.ID,
		&b.RoomID,
		&b.Date,
		&b.Start,
		&b.End,
		&b.Name,
		&b.Email,
		&b.Department,
		&b.MeetingTitle,
		&b.Notes,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return err
	}
	if err := r.insertCancelledEvent(ctx, tx, b); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PostgresRepository) insertCreatedEvent(ctx context.Context, tx pgx.Tx, b model.Booking) error {
	if r.outbox == nil {
		return nil
	}
	payload, err := json.Marshal(map[string]any{
		"booking_id":    b.ID,
		"room_id":       b.RoomID,
		"date":          b.Date,
		"start_time":    b.Start,
		"end_time":      b.End,
		"email":         b.Email,
		"meeting_title": b.MeetingTitle,
		"created_at":    b.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return r.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "booking",
		AggregateID:   b.ID,
		EventType:     "booking.created.v1",
		Payload:       payload,
	})
}

func (r *PostgresRepository) insertCancelledEvent(ctx context.Context, tx pgx.Tx, b model.Booking) error {
	if r.outbox == nil {
		return nil
	}
	payload, err := json.Marshal(map[string]any{
		"booking_id": b.ID,
		"room_id":    b.RoomID,
		"date":       b.Date,
		"start_time": b.Start,
		"end_time":   b.End,
		"email":      b.Email,
	})
	if err != nil {
		return err
	}
	return r.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "booking",
		AggregateID:   b.ID,
		EventType:     "booking.cancelled.v1",
		Payload:       payload,
	})
}

// isExclusionViolation matches the bookings_no_overlap constraint (SQLSTATE
// 23P01). The advisory lock makes this unreachable in normal operation; it
// exists so a missed lock path can never corrupt the invariant.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func scanBookings(rows pgx.Rows) ([]model.Booking, error) {
	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID,
			&b.RoomID,
			&b.Date,
			&b.Start,
			&b.End,
			&b.Name,
			&b.Email,
			&b.Department,
			&b.MeetingTitle,
			&b.Notes,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return bookings, nil
}

var _ Repository = (*PostgresRepository)(nil)
