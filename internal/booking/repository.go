package booking

import (
	"context"
	"database/sql"
	"errors"

	"libraryhub/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const requestColumns = `id, resource_type, resource_id, requester_id, booking_date, start_time, end_time, status, approver_id, created_at, updated_at`

// resourceTable maps a resource type to the table holding the resource row.
// The row is what approval transactions lock.
func resourceTable(resourceType string) string {
	if resourceType == ResourceTypeBoardGame {
		return "board_games"
	}
	return "rooms"
}

func (r *repository) CreateRequest(ctx context.Context, req CreateBookingRequest, requesterID int) (*BookingRequest, error) {
	query := `
		INSERT INTO booking_requests (resource_type, resource_id, requester_id, booking_date, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending')
		RETURNING ` + requestColumns

	var created BookingRequest
	err := r.db.GetContext(ctx, &created, query,
		req.ResourceType, req.ResourceID, requesterID, req.BookingDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetRequestByID(ctx context.Context, id int) (*BookingRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM booking_requests WHERE id = $1`

	var req BookingRequest
	err := r.db.GetContext(ctx, &req, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

// conflictQuery is the single overlap predicate shared by creation-time and
// approval-time checks: two half-open intervals intersect iff each starts
// before the other ends. Only approved rows hold the resource. Pass
// excludeRequestID = 0 when no request should be excluded.
const conflictQuery = `
	SELECT EXISTS(
		SELECT 1 FROM booking_requests
		WHERE resource_type = $1
		  AND resource_id = $2
		  AND booking_date = $3
		  AND status = 'approved'
		  AND id <> $4
		  AND start_time < $6
		  AND $5 < end_time
	)`

func (r *repository) HasConflict(ctx context.Context, resourceType string, resourceID int, date, start, end string, excludeRequestID int) (bool, error) {
	return db.Exists(ctx, r.db, conflictQuery,
		resourceType, resourceID, date, excludeRequestID, start, end)
}

// ApproveRequest transitions a pending request to approved, re-running the
// conflict check inside the same transaction that writes the status. The
// resource row is locked first so that two approvals for the same resource
// serialize; whichever commits second sees the winner's approved row and
// fails with ErrConflict, leaving its request pending.
func (r *repository) ApproveRequest(ctx context.Context, requestID, approverID int) (*BookingRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var req BookingRequest
	err = tx.GetContext(ctx, &req, `SELECT `+requestColumns+` FROM booking_requests WHERE id = $1`, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	var resourceID int
	err = tx.GetContext(ctx, &resourceID,
		`SELECT id FROM `+resourceTable(req.ResourceType)+` WHERE id = $1 FOR UPDATE`, req.ResourceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	var conflict bool
	err = tx.GetContext(ctx, &conflict, conflictQuery,
		req.ResourceType, req.ResourceID, req.BookingDate, req.ID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrConflict
	}

	var approved BookingRequest
	err = tx.GetContext(ctx, &approved, `
		UPDATE booking_requests
		SET status = 'approved', approver_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+requestColumns, requestID, approverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotPending
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &approved, nil
}

func (r *repository) RejectRequest(ctx context.Context, requestID, approverID int) (*BookingRequest, error) {
	var rejected BookingRequest
	err := r.db.GetContext(ctx, &rejected, `
		UPDATE booking_requests
		SET status = 'rejected', approver_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+requestColumns, requestID, approverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotPending
		}
		return nil, err
	}

	return &rejected, nil
}

func (r *repository) CancelRequest(ctx context.Context, requestID int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE booking_requests
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`, requestID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotPending
	}

	return nil
}

func (r *repository) ListByRequester(ctx context.Context, requesterID int) ([]BookingRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM booking_requests
		WHERE requester_id = $1
		ORDER BY created_at DESC`

	var requests []BookingRequest
	err := r.db.SelectContext(ctx, &requests, query, requesterID)
	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *repository) ListPending(ctx context.Context) ([]BookingRequestWithDetails, error) {
	query := `
		SELECT
			br.id,
			br.resource_type,
			br.resource_id,
			br.requester_id,
			br.booking_date,
			br.start_time,
			br.end_time,
			br.status,
			br.approver_id,
			br.created_at,
			br.updated_at,
			u.name AS requester_name,
			u.email AS requester_email,
			CASE br.resource_type
				WHEN 'room' THEN (SELECT r.name FROM rooms r WHERE r.id = br.resource_id)
				ELSE (SELECT g.title FROM board_games g WHERE g.id = br.resource_id)
			END AS resource_name
		FROM booking_requests br
		JOIN users u ON br.requester_id = u.id
		WHERE br.status = 'pending'
		ORDER BY br.booking_date ASC, br.start_time ASC`

	var requests []BookingRequestWithDetails
	err := r.db.SelectContext(ctx, &requests, query)
	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *repository) ListApprovedForResource(ctx context.Context, resourceType string, resourceID int, date string) ([]BookingRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM booking_requests
		WHERE resource_type = $1 AND resource_id = $2 AND booking_date = $3 AND status = 'approved'
		ORDER BY start_time ASC`

	var requests []BookingRequest
	err := r.db.SelectContext(ctx, &requests, query, resourceType, resourceID, date)
	if err != nil {
		return nil, err
	}

	return requests, nil
}
