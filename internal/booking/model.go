package booking

import "time"

const (
	ResourceTypeRoom      = "room"
	ResourceTypeBoardGame = "board_game"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type BookingRequest struct {
	ID           int       `db:"id" json:"id"`
	ResourceType string    `db:"resource_type" json:"resource_type"`
	ResourceID   int       `db:"resource_id" json:"resource_id"`
	RequesterID  int       `db:"requester_id" json:"requester_id"`
	BookingDate  string    `db:"booking_date" json:"booking_date"`
	StartTime    string    `db:"start_time" json:"start_time"`
	EndTime      string    `db:"end_time" json:"end_time"`
	Status       string    `db:"status" json:"status"`
	ApproverID   *int      `db:"approver_id" json:"approver_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type BookingRequestWithDetails struct {
	BookingRequest
	RequesterName  string `db:"requester_name" json:"requester_name"`
	RequesterEmail string `db:"requester_email" json:"requester_email"`
	ResourceName   string `db:"resource_name" json:"resource_name"`
}

type CreateBookingRequest struct {
	ResourceType string `json:"resource_type" binding:"required,oneof=room board_game"`
	ResourceID   int    `json:"resource_id" binding:"required,min=1"`
	BookingDate  string `json:"booking_date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
}
