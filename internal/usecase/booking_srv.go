package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/response"
	"github.com/AliHsynvv/airen-media-sub002/pkg/pricing"
	"github.com/AliHsynvv/airen-media-sub002/pkg/queue"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BookingService quotes and manages reservations. Prices are snapshotted at
// creation so rate-card edits never rewrite existing bookings.
type BookingService interface {
	Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetByReference(ctx context.Context, userID uuid.UUID, role, reference string) (*response.BookingResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ListForBusiness(ctx context.Context, userID uuid.UUID, role string, businessID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	Confirm(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) (*response.BookingResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) (*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	publisher *queue.Publisher
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, publisher *queue.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

func (s *bookingService) Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	business, start, end, err := s.loadQuoteInput(ctx, req.BusinessID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.QuoteBooking(business.RateCard(), *start, end, req.GuestsCount)
	if err != nil {
		return nil, err
	}

	resp := response.QuoteToResponse(quote)
	return &resp, nil
}

func (s *bookingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	business, start, end, err := s.loadQuoteInput(ctx, req.BusinessID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.QuoteBooking(business.RateCard(), *start, end, req.GuestsCount)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:    utils.GenerateBookingReference(),
		BusinessID:   business.ID,
		UserID:       userID,
		StartDate:    *start,
		EndDate:      end,
		GuestsCount:  req.GuestsCount,
		PricePerUnit: quote.PricePerUnit,
		TotalPrice:   quote.TotalPrice,
		Currency:     quote.Currency,
		Note:         req.Note,
		Status:       entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.Float64("total_price", booking.TotalPrice))

	event := queue.BookingCreatedEvent{
		BookingID:    booking.ID.String(),
		Reference:    booking.Reference,
		BusinessID:   business.ID.String(),
		BusinessName: business.Name,
		OwnerID:      business.OwnerID.String(),
		UserID:       userID.String(),
		StartDate:    booking.StartDate.Format(dateLayout),
		GuestsCount:  booking.GuestsCount,
		TotalPrice:   booking.TotalPrice,
		Currency:     booking.Currency,
		CreatedAt:    now.Format(time.RFC3339),
	}
	if booking.EndDate != nil {
		endStr := booking.EndDate.Format(dateLayout)
		event.EndDate = &endStr
	}
	if err := s.publisher.Publish(ctx, queue.QueueBookingCreated, event); err != nil {
		s.log.Warn("Failed to publish booking event", zap.Error(err), zap.String("reference", booking.Reference))
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetByReference(ctx context.Context, userID uuid.UUID, role, reference string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	if err := s.authorize(ctx, booking, userID, role, true); err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListMine(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.ListByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return s.paginate(bookings, page, total), nil
}

func (s *bookingService) ListForBusiness(ctx context.Context, userID uuid.UUID, role string, businessID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	business, err := s.repo.Business.FindByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("find business: %w", err)
	}
	if business == nil {
		return nil, ErrNotFound
	}
	if business.OwnerID != userID && role != string(entity.RoleAdmin) {
		return nil, ErrForbidden
	}

	bookings, err := s.repo.Booking.ListByBusiness(ctx, businessID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return s.paginate(bookings, page, total), nil
}

func (s *bookingService) Confirm(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	// only the listing owner decides on a pending booking
	if err := s.authorize(ctx, booking, userID, role, false); err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, ErrInvalidTransition
	}

	return s.transition(ctx, booking, entity.BookingStatusConfirmed)
}

func (s *bookingService) Cancel(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	if err := s.authorize(ctx, booking, userID, role, true); err != nil {
		return nil, err
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, ErrInvalidTransition
	}

	return s.transition(ctx, booking, entity.BookingStatusCancelled)
}

func (s *bookingService) transition(ctx context.Context, booking *entity.Booking, status entity.BookingStatus) (*response.BookingResponse, error) {
	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, status); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = status

	s.log.Info("Booking status changed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(status)))

	businessName := ""
	if business, err := s.repo.Business.FindByID(ctx, booking.BusinessID); err == nil && business != nil {
		businessName = business.Name
	}

	event := queue.BookingStatusEvent{
		BookingID:    booking.ID.String(),
		Reference:    booking.Reference,
		BusinessName: businessName,
		UserID:       booking.UserID.String(),
		Status:       string(status),
		ChangedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.Publish(ctx, queue.QueueBookingStatus, event); err != nil {
		s.log.Warn("Failed to publish status event", zap.Error(err), zap.String("reference", booking.Reference))
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// authorize checks who may act on a booking: the listing owner and admins
// always may; the requesting traveller only when includeRequester is set.
func (s *bookingService) authorize(ctx context.Context, booking *entity.Booking, userID uuid.UUID, role string, includeRequester bool) error {
	if role == string(entity.RoleAdmin) {
		return nil
	}
	if includeRequester && booking.UserID == userID {
		return nil
	}

	business, err := s.repo.Business.FindByID(ctx, booking.BusinessID)
	if err != nil {
		return fmt.Errorf("find business: %w", err)
	}
	if business != nil && business.OwnerID == userID {
		return nil
	}

	return ErrForbidden
}

func (s *bookingService) loadQuoteInput(ctx context.Context, businessID, startDate string, endDate *string) (*entity.Business, *time.Time, *time.Time, error) {
	id, err := uuid.Parse(businessID)
	if err != nil {
		return nil, nil, nil, &ValidationError{Fields: map[string]string{"BusinessID": "Must be a valid UUID"}}
	}

	business, err := s.repo.Business.FindByID(ctx, id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("find business: %w", err)
	}
	if business == nil {
		return nil, nil, nil, ErrNotFound
	}

	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return nil, nil, nil, &ValidationError{Fields: map[string]string{"StartDate": "Invalid date format, expected YYYY-MM-DD"}}
	}

	var end *time.Time
	if endDate != nil {
		parsed, err := time.ParseInLocation(dateLayout, *endDate, time.UTC)
		if err != nil {
			return nil, nil, nil, &ValidationError{Fields: map[string]string{"EndDate": "Invalid date format, expected YYYY-MM-DD"}}
		}
		end = &parsed
	}

	return business, &start, end, nil
}

func (s *bookingService) paginate(bookings []*entity.Booking, page request.PaginatedRequest, total int64) *response.PaginatedResponse[response.BookingResponse] {
	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, response.BookingToResponse(booking))
	}
	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total)
}
