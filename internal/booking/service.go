package booking

import (
	"context"
	"fmt"

	"libraryhub/internal/email"
	"libraryhub/internal/game"
	"libraryhub/internal/logger"
	"libraryhub/internal/metrics"
	"libraryhub/internal/room"
	"libraryhub/internal/user"
)

type Service interface {
	CreateRequest(ctx context.Context, requesterID int, req CreateBookingRequest) (*BookingRequest, error)
	Approve(ctx context.Context, requestID, approverID int) (*BookingRequest, error)
	Reject(ctx context.Context, requestID, approverID int) (*BookingRequest, error)
	Cancel(ctx context.Context, requestID, requesterID int) error
	ListMyRequests(ctx context.Context, requesterID int) ([]BookingRequest, error)
	ListPending(ctx context.Context) ([]BookingRequestWithDetails, error)
	ResourceSchedule(ctx context.Context, resourceType string, resourceID int, date string) ([]BookingRequest, error)
}

type service struct {
	repo         Repository
	roomRepo     room.Repository
	gameRepo     game.Repository
	userRepo     user.Repository
	emailService *email.Service
}

func NewService(
	repo Repository,
	roomRepo room.Repository,
	gameRepo game.Repository,
	userRepo user.Repository,
	emailService *email.Service,
) Service {
	return &service{
		repo:         repo,
		roomRepo:     roomRepo,
		gameRepo:     gameRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// CreateRequest files a new pending booking request. Creation is fail-closed:
// if the interval already overlaps an approved booking for the resource on
// that date, nothing is persisted. Pending requests for the same slot do not
// block each other; only approval claims the resource.
func (s *service) CreateRequest(ctx context.Context, requesterID int, req CreateBookingRequest) (*BookingRequest, error) {
	if err := ValidateInterval(req.BookingDate, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	if err := s.checkResource(ctx, req.ResourceType, req.ResourceID); err != nil {
		return nil, err
	}

	conflict, err := s.repo.HasConflict(ctx, req.ResourceType, req.ResourceID, req.BookingDate, req.StartTime, req.EndTime, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		metrics.RecordConflict(req.ResourceType, "create")
		return nil, ErrConflict
	}

	created, err := s.repo.CreateRequest(ctx, req, requesterID)
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingRequest(req.ResourceType, StatusPending)
	return created, nil
}

// Approve re-runs the conflict check atomically with the status write.
// Another overlapping request may have been approved since creation, so the
// creation-time check alone is not enough. On conflict the request stays
// pending for the approver to reject or resolve manually.
func (s *service) Approve(ctx context.Context, requestID, approverID int) (*BookingRequest, error) {
	req, err := s.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != StatusPending {
		return nil, ErrNotPending
	}

	approved, err := s.repo.ApproveRequest(ctx, requestID, approverID)
	if err != nil {
		if err == ErrConflict {
			metrics.RecordConflict(req.ResourceType, "approve")
		}
		return nil, err
	}

	metrics.RecordBookingRequest(approved.ResourceType, StatusApproved)
	s.notifyDecision(ctx, approved, "approved")
	return approved, nil
}

func (s *service) Reject(ctx context.Context, requestID, approverID int) (*BookingRequest, error) {
	rejected, err := s.repo.RejectRequest(ctx, requestID, approverID)
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingRequest(rejected.ResourceType, StatusRejected)
	s.notifyDecision(ctx, rejected, "rejected")
	return rejected, nil
}

func (s *service) Cancel(ctx context.Context, requestID, requesterID int) error {
	req, err := s.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	if req.RequesterID != requesterID {
		return ErrNotOwner
	}

	if err := s.repo.CancelRequest(ctx, requestID); err != nil {
		return err
	}

	metrics.RecordBookingRequest(req.ResourceType, StatusCancelled)
	return nil
}

func (s *service) ListMyRequests(ctx context.Context, requesterID int) ([]BookingRequest, error) {
	return s.repo.ListByRequester(ctx, requesterID)
}

func (s *service) ListPending(ctx context.Context) ([]BookingRequestWithDetails, error) {
	return s.repo.ListPending(ctx)
}

func (s *service) ResourceSchedule(ctx context.Context, resourceType string, resourceID int, date string) ([]BookingRequest, error) {
	// Unavailable games still have a history worth showing.
	if err := s.checkResource(ctx, resourceType, resourceID); err != nil && err != ErrResourceUnavailable {
		return nil, err
	}
	return s.repo.ListApprovedForResource(ctx, resourceType, resourceID, date)
}

func (s *service) checkResource(ctx context.Context, resourceType string, resourceID int) error {
	switch resourceType {
	case ResourceTypeBoardGame:
		g, err := s.gameRepo.GetGameByID(ctx, resourceID)
		if err != nil {
			return ErrResourceNotFound
		}
		if !g.IsAvailable {
			return ErrResourceUnavailable
		}
	default:
		if _, err := s.roomRepo.GetRoomByID(ctx, resourceID); err != nil {
			return ErrResourceNotFound
		}
	}
	return nil
}

func (s *service) notifyDecision(ctx context.Context, req *BookingRequest, decision string) {
	u, err := s.userRepo.FindByID(ctx, req.RequesterID)
	if err != nil {
		logger.Errorf("Could not load requester %d for notification: %v", req.RequesterID, err)
		return
	}

	name := s.resourceName(ctx, req.ResourceType, req.ResourceID)
	subject := fmt.Sprintf("Your booking request was %s", decision)
	body := fmt.Sprintf("Your request for %s on %s from %s to %s has been %s.",
		name, req.BookingDate, req.StartTime, req.EndTime, decision)

	if err := s.emailService.Send(ctx, u.Email, u.Name, subject, body); err != nil {
		logger.Errorf("Failed to queue %s notification for request %d: %v", decision, req.ID, err)
	}
}

func (s *service) resourceName(ctx context.Context, resourceType string, resourceID int) string {
	if resourceType == ResourceTypeBoardGame {
		if g, err := s.gameRepo.GetGameByID(ctx, resourceID); err == nil {
			return g.Title
		}
		return "a board game"
	}
	if r, err := s.roomRepo.GetRoomByID(ctx, resourceID); err == nil {
		return r.Name
	}
	return "a room"
}
