package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/response"
	"github.com/AliHsynvv/airen-media-sub002/pkg/cache"
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
	"github.com/AliHsynvv/airen-media-sub002/pkg/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const cacheKindCountry = "country"

// CountryService manages the curated country guide. Writes are admin-only,
// enforced at the routing layer.
type CountryService interface {
	Create(ctx context.Context, req *request.CreateCountryRequest) (*response.CountryResponse, error)
	GetBySlug(ctx context.Context, slugVal, loc string) (*response.CountryResponse, error)
	List(ctx context.Context, loc string, page request.PaginatedRequest) (*response.PaginatedResponse[response.CountryResponse], error)
	Update(ctx context.Context, code string, req *request.UpdateCountryRequest) (*response.CountryResponse, error)
	UpsertTranslation(ctx context.Context, code string, req *request.UpsertTranslationRequest) error
}

type countryService struct {
	repo  *repository.Repository
	slugs *slug.Assigner
	cache *cache.ContentCache
	log   *zap.Logger
}

func NewCountryService(repo *repository.Repository, slugs *slug.Assigner, contentCache *cache.ContentCache, log *zap.Logger) CountryService {
	return &countryService{
		repo:  repo,
		slugs: slugs,
		cache: contentCache,
		log:   log,
	}
}

func (s *countryService) Create(ctx context.Context, req *request.CreateCountryRequest) (*response.CountryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	code := strings.ToUpper(req.Code)

	existing, err := s.repo.Country.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check country code: %w", err)
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	slugVal, err := s.slugs.Assign(ctx, req.Name, s.repo.Country.SlugExists)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	country := &entity.Country{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:            code,
		Slug:            slugVal,
		Name:            req.Name,
		DefaultLanguage: req.DefaultLanguage,
		Description:     req.Description,
		Capital:         req.Capital,
		Currency:        req.Currency,
		BestSeason:      req.BestSeason,
		FlagURL:         req.FlagURL,
		Translations:    req.Translations,
	}

	err = s.repo.Country.Create(ctx, country)
	if err == repository.ErrDuplicate {
		slugVal, err = s.slugs.Assign(ctx, req.Name, s.repo.Country.SlugExists)
		if err != nil {
			return nil, err
		}
		country.Slug = slugVal
		err = s.repo.Country.Create(ctx, country)
		if err == repository.ErrDuplicate {
			return nil, ErrSlugTaken
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create country: %w", err)
	}

	s.log.Info("Country created",
		zap.String("code", country.Code),
		zap.String("slug", country.Slug))

	resolved := locale.Resolve(country.TranslatableContent(), country.DefaultLanguage)
	resp := response.CountryToResponse(country, resolved)
	return &resp, nil
}

func (s *countryService) GetBySlug(ctx context.Context, slugVal, loc string) (*response.CountryResponse, error) {
	var cached response.CountryResponse
	if s.cache.Get(ctx, cacheKindCountry, slugVal, loc, &cached) {
		return &cached, nil
	}

	country, err := s.repo.Country.FindBySlug(ctx, slugVal)
	if err != nil {
		return nil, fmt.Errorf("find country: %w", err)
	}
	if country == nil {
		return nil, ErrNotFound
	}

	resolved := locale.Resolve(country.TranslatableContent(), loc)
	resp := response.CountryToResponse(country, resolved)

	s.cache.Set(ctx, cacheKindCountry, slugVal, loc, resp)

	return &resp, nil
}

func (s *countryService) List(ctx context.Context, loc string, page request.PaginatedRequest) (*response.PaginatedResponse[response.CountryResponse], error) {
	countries, err := s.repo.Country.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}

	total, err := s.repo.Country.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count countries: %w", err)
	}

	items := make([]response.CountryResponse, 0, len(countries))
	for _, country := range countries {
		resolved := locale.Resolve(country.TranslatableContent(), loc)
		items = append(items, response.CountryToResponse(country, resolved))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *countryService) Update(ctx context.Context, code string, req *request.UpdateCountryRequest) (*response.CountryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	country, err := s.repo.Country.FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("find country: %w", err)
	}
	if country == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		country.Name = *req.Name
	}
	if req.Description != nil {
		country.Description = *req.Description
	}
	if req.Capital != nil {
		country.Capital = req.Capital
	}
	if req.Currency != nil {
		country.Currency = req.Currency
	}
	if req.BestSeason != nil {
		country.BestSeason = req.BestSeason
	}
	if req.FlagURL != nil {
		country.FlagURL = req.FlagURL
	}
	country.UpdatedAt = time.Now().UTC()

	if err := s.repo.Country.Update(ctx, country); err != nil {
		return nil, fmt.Errorf("update country: %w", err)
	}

	s.cache.Invalidate(ctx, cacheKindCountry, country.Slug)

	resolved := locale.Resolve(country.TranslatableContent(), country.DefaultLanguage)
	resp := response.CountryToResponse(country, resolved)
	return &resp, nil
}

func (s *countryService) UpsertTranslation(ctx context.Context, code string, req *request.UpsertTranslationRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	country, err := s.repo.Country.FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return fmt.Errorf("find country: %w", err)
	}
	if country == nil {
		return ErrNotFound
	}

	if country.Translations == nil {
		country.Translations = locale.Translations{}
	}
	country.Translations[req.Locale] = req.Fields

	if err := s.repo.Country.UpdateTranslations(ctx, country.ID, country.Translations); err != nil {
		return fmt.Errorf("update translations: %w", err)
	}

	s.cache.Invalidate(ctx, cacheKindCountry, country.Slug)

	return nil
}
