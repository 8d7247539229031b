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

// TagService manages the flat tag vocabulary. Tags are deduplicated by slug,
// so "City Break" and "city-break" resolve to the same entry.
type TagService interface {
	Create(ctx context.Context, req *request.CreateTagRequest) (*response.TagResponse, error)
	List(ctx context.Context) ([]response.TagResponse, error)
}

type tagService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTagService(repo *repository.Repository, log *zap.Logger) TagService {
	return &tagService{
		repo: repo,
		log:  log,
	}
}

func (s *tagService) Create(ctx context.Context, req *request.CreateTagRequest) (*response.TagResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	slugVal := slug.Normalize(req.Name)
	if slugVal == "" {
		return nil, slug.ErrInvalidTitle
	}

	tag := &entity.Tag{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		Name: req.Name,
		Slug: slugVal,
	}

	err := s.repo.Tag.Create(ctx, tag)
	if err == repository.ErrDuplicate {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	resp := response.TagToResponse(tag)
	return &resp, nil
}

func (s *tagService) List(ctx context.Context) ([]response.TagResponse, error) {
	tags, err := s.repo.Tag.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	items := make([]response.TagResponse, 0, len(tags))
	for _, tag := range tags {
		items = append(items, response.TagToResponse(tag))
	}

	return items, nil
}
