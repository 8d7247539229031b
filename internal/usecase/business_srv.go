package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/response"
	"github.com/AliHsynvv/airen-media-sub002/pkg/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BusinessService manages bookable listings and their rate cards.
type BusinessService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateBusinessRequest) (*response.BusinessResponse, error)
	GetBySlug(ctx context.Context, slugVal string) (*response.BusinessResponse, error)
	List(ctx context.Context, category string, page request.PaginatedRequest) (*response.PaginatedResponse[response.BusinessResponse], error)
	Update(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpdateBusinessRequest) (*response.BusinessResponse, error)
}

type businessService struct {
	repo  *repository.Repository
	slugs *slug.Assigner
	log   *zap.Logger
}

func NewBusinessService(repo *repository.Repository, slugs *slug.Assigner, log *zap.Logger) BusinessService {
	return &businessService{
		repo:  repo,
		slugs: slugs,
		log:   log,
	}
}

func (s *businessService) Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateBusinessRequest) (*response.BusinessResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	slugVal, err := s.slugs.Assign(ctx, req.Name, s.repo.Business.SlugExists)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	business := &entity.Business{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:         ownerID,
		Slug:            slugVal,
		Name:            req.Name,
		Category:        req.Category,
		Description:     req.Description,
		Address:         req.Address,
		City:            req.City,
		CountryCode:     req.CountryCode,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		BasePrice:       req.BasePrice,
		DiscountedPrice: req.DiscountedPrice,
		Currency:        req.Currency,
		MinBookingDays:  req.MinBookingDays,
		MaxCapacity:     req.MaxCapacity,
		IsAvailable:     req.IsAvailable,
		IsBookable:      req.IsBookable,
	}

	err = s.repo.Business.Create(ctx, business)
	if err == repository.ErrDuplicate {
		slugVal, err = s.slugs.Assign(ctx, req.Name, s.repo.Business.SlugExists)
		if err != nil {
			return nil, err
		}
		business.Slug = slugVal
		err = s.repo.Business.Create(ctx, business)
		if err == repository.ErrDuplicate {
			return nil, ErrSlugTaken
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}

	s.log.Info("Business created",
		zap.String("business_id", business.ID.String()),
		zap.String("slug", business.Slug))

	resp := response.BusinessToResponse(business)
	return &resp, nil
}

func (s *businessService) GetBySlug(ctx context.Context, slugVal string) (*response.BusinessResponse, error) {
	business, err := s.repo.Business.FindBySlug(ctx, slugVal)
	if err != nil {
		return nil, fmt.Errorf("find business: %w", err)
	}
	if business == nil {
		return nil, ErrNotFound
	}

	resp := response.BusinessToResponse(business)
	return &resp, nil
}

func (s *businessService) List(ctx context.Context, category string, page request.PaginatedRequest) (*response.PaginatedResponse[response.BusinessResponse], error) {
	businesses, err := s.repo.Business.List(ctx, category, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	total, err := s.repo.Business.Count(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("count businesses: %w", err)
	}

	items := make([]response.BusinessResponse, 0, len(businesses))
	for _, business := range businesses {
		items = append(items, response.BusinessToResponse(business))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *businessService) Update(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpdateBusinessRequest) (*response.BusinessResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	business, err := s.repo.Business.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find business: %w", err)
	}
	if business == nil {
		return nil, ErrNotFound
	}
	if business.OwnerID != userID && role != string(entity.RoleAdmin) {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Category != nil {
		business.Category = *req.Category
	}
	if req.Description != nil {
		business.Description = req.Description
	}
	if req.Address != nil {
		business.Address = req.Address
	}
	if req.City != nil {
		business.City = req.City
	}
	if req.CountryCode != nil {
		business.CountryCode = req.CountryCode
	}
	if req.ContactEmail != nil {
		business.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		business.ContactPhone = req.ContactPhone
	}
	if req.BasePrice != nil {
		business.BasePrice = *req.BasePrice
	}
	if req.DiscountedPrice != nil {
		business.DiscountedPrice = req.DiscountedPrice
	}
	if req.Currency != nil {
		business.Currency = *req.Currency
	}
	if req.MinBookingDays != nil {
		business.MinBookingDays = *req.MinBookingDays
	}
	if req.MaxCapacity != nil {
		business.MaxCapacity = req.MaxCapacity
	}
	if req.IsAvailable != nil {
		business.IsAvailable = *req.IsAvailable
	}
	if req.IsBookable != nil {
		business.IsBookable = *req.IsBookable
	}
	business.UpdatedAt = time.Now().UTC()

	if err := s.repo.Business.Update(ctx, business); err != nil {
		return nil, fmt.Errorf("update business: %w", err)
	}

	resp := response.BusinessToResponse(business)
	return &resp, nil
}
