package booking

import "context"

type Repository interface {
	CreateRequest(ctx context.Context, req CreateBookingRequest, requesterID int) (*BookingRequest, error)
	GetRequestByID(ctx context.Context, id int) (*BookingRequest, error)
	HasConflict(ctx context.Context, resourceType string, resourceID int, date, start, end string, excludeRequestID int) (bool, error)
	ApproveRequest(ctx context.Context, requestID, approverID int) (*BookingRequest, error)
	RejectRequest(ctx context.Context, requestID, approverID int) (*BookingRequest, error)
	CancelRequest(ctx context.Context, requestID int) error
	ListByRequester(ctx context.Context, requesterID int) ([]BookingRequest, error)
	ListPending(ctx context.Context) ([]BookingRequestWithDetails, error)
	ListApprovedForResource(ctx context.Context, resourceType string, resourceID int, date string) ([]BookingRequest, error)
}
