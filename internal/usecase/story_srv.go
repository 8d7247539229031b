package usecase

import (
	"context"
	"fmt"
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

const cacheKindStory = "story"

// StoryService handles user travel stories. New stories start pending and
// only reach public listings after an admin approves them.
type StoryService interface {
	Create(ctx context.Context, authorID uuid.UUID, req *request.CreateStoryRequest) (*response.StoryResponse, error)
	GetBySlug(ctx context.Context, requesterID uuid.UUID, role, slugVal, loc string) (*response.StoryResponse, error)
	ListApproved(ctx context.Context, loc string, page request.PaginatedRequest) (*response.PaginatedResponse[response.StoryResponse], error)
	ListMine(ctx context.Context, authorID uuid.UUID, loc string, page request.PaginatedRequest) ([]response.StoryResponse, error)
	Update(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpdateStoryRequest) (*response.StoryResponse, error)
	UpsertTranslation(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpsertTranslationRequest) error
	Moderate(ctx context.Context, id uuid.UUID, req *request.ModerateStoryRequest) (*response.StoryResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) error
}

type storyService struct {
	repo  *repository.Repository
	slugs *slug.Assigner
	cache *cache.ContentCache
	log   *zap.Logger
}

func NewStoryService(repo *repository.Repository, slugs *slug.Assigner, contentCache *cache.ContentCache, log *zap.Logger) StoryService {
	return &storyService{
		repo:  repo,
		slugs: slugs,
		cache: contentCache,
		log:   log,
	}
}

func (s *storyService) Create(ctx context.Context, authorID uuid.UUID, req *request.CreateStoryRequest) (*response.StoryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	slugVal, err := s.slugs.Assign(ctx, req.Title, s.repo.Story.SlugExists)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	story := &entity.Story{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Slug:            slugVal,
		AuthorID:        authorID,
		DefaultLanguage: req.DefaultLanguage,
		Title:           req.Title,
		Content:         req.Content,
		CountryCode:     req.CountryCode,
		CoverURL:        req.CoverURL,
		Status:          entity.StoryStatusPending,
		Translations:    req.Translations,
	}

	err = s.repo.Story.Create(ctx, story)
	if err == repository.ErrDuplicate {
		slugVal, err = s.slugs.Assign(ctx, req.Title, s.repo.Story.SlugExists)
		if err != nil {
			return nil, err
		}
		story.Slug = slugVal
		err = s.repo.Story.Create(ctx, story)
		if err == repository.ErrDuplicate {
			return nil, ErrSlugTaken
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}

	s.log.Info("Story submitted",
		zap.String("story_id", story.ID.String()),
		zap.String("slug", story.Slug))

	resolved := locale.Resolve(story.TranslatableContent(), story.DefaultLanguage)
	resp := response.StoryToResponse(story, resolved)
	return &resp, nil
}

func (s *storyService) GetBySlug(ctx context.Context, requesterID uuid.UUID, role, slugVal, loc string) (*response.StoryResponse, error) {
	var cached response.StoryResponse
	if s.cache.Get(ctx, cacheKindStory, slugVal, loc, &cached) {
		return &cached, nil
	}

	story, err := s.repo.Story.FindBySlug(ctx, slugVal)
	if err != nil {
		return nil, fmt.Errorf("find story: %w", err)
	}
	if story == nil {
		return nil, ErrNotFound
	}

	// unapproved stories exist only for their author and moderators
	if story.Status != entity.StoryStatusApproved &&
		story.AuthorID != requesterID && role != string(entity.RoleAdmin) {
		return nil, ErrNotFound
	}

	resolved := locale.Resolve(story.TranslatableContent(), loc)
	resp := response.StoryToResponse(story, resolved)

	if story.Status == entity.StoryStatusApproved {
		s.cache.Set(ctx, cacheKindStory, slugVal, loc, resp)
	}

	return &resp, nil
}

func (s *storyService) ListApproved(ctx context.Context, loc string, page request.PaginatedRequest) (*response.PaginatedResponse[response.StoryResponse], error) {
	stories, err := s.repo.Story.ListApproved(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	total, err := s.repo.Story.CountApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stories: %w", err)
	}

	items := make([]response.StoryResponse, 0, len(stories))
	for _, story := range stories {
		resolved := locale.Resolve(story.TranslatableContent(), loc)
		items = append(items, response.StoryToResponse(story, resolved))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *storyService) ListMine(ctx context.Context, authorID uuid.UUID, loc string, page request.PaginatedRequest) ([]response.StoryResponse, error) {
	stories, err := s.repo.Story.ListByAuthor(ctx, authorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list stories by author: %w", err)
	}

	items := make([]response.StoryResponse, 0, len(stories))
	for _, story := range stories {
		resolved := locale.Resolve(story.TranslatableContent(), loc)
		items = append(items, response.StoryToResponse(story, resolved))
	}

	return items, nil
}

func (s *storyService) Update(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpdateStoryRequest) (*response.StoryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	story, err := s.loadOwned(ctx, userID, role, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		story.Title = *req.Title
	}
	if req.Content != nil {
		story.Content = *req.Content
	}
	if req.CountryCode != nil {
		story.CountryCode = req.CountryCode
	}
	if req.CoverURL != nil {
		story.CoverURL = req.CoverURL
	}
	story.UpdatedAt = time.Now().UTC()

	if err := s.repo.Story.Update(ctx, story); err != nil {
		return nil, fmt.Errorf("update story: %w", err)
	}

	s.cache.Invalidate(ctx, cacheKindStory, story.Slug)

	resolved := locale.Resolve(story.TranslatableContent(), story.DefaultLanguage)
	resp := response.StoryToResponse(story, resolved)
	return &resp, nil
}

func (s *storyService) UpsertTranslation(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpsertTranslationRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	story, err := s.loadOwned(ctx, userID, role, id)
	if err != nil {
		return err
	}

	if story.Translations == nil {
		story.Translations = locale.Translations{}
	}
	story.Translations[req.Locale] = req.Fields
	story.UpdatedAt = time.Now().UTC()

	if err := s.repo.Story.Update(ctx, story); err != nil {
		return fmt.Errorf("update translations: %w", err)
	}

	s.cache.Invalidate(ctx, cacheKindStory, story.Slug)

	return nil
}

func (s *storyService) Moderate(ctx context.Context, id uuid.UUID, req *request.ModerateStoryRequest) (*response.StoryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	story, err := s.repo.Story.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find story: %w", err)
	}
	if story == nil {
		return nil, ErrNotFound
	}

	status := entity.StoryStatus(req.Status)
	if err := s.repo.Story.UpdateStatus(ctx, story.ID, status); err != nil {
		return nil, fmt.Errorf("moderate story: %w", err)
	}
	story.Status = status

	s.cache.Invalidate(ctx, cacheKindStory, story.Slug)

	s.log.Info("Story moderated",
		zap.String("story_id", story.ID.String()),
		zap.String("status", req.Status))

	resolved := locale.Resolve(story.TranslatableContent(), story.DefaultLanguage)
	resp := response.StoryToResponse(story, resolved)
	return &resp, nil
}

func (s *storyService) Delete(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) error {
	story, err := s.loadOwned(ctx, userID, role, id)
	if err != nil {
		return err
	}

	if err := s.repo.Story.SoftDelete(ctx, story.ID); err != nil {
		return fmt.Errorf("delete story: %w", err)
	}

	s.cache.Invalidate(ctx, cacheKindStory, story.Slug)

	return nil
}

func (s *storyService) loadOwned(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) (*entity.Story, error) {
	story, err := s.repo.Story.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find story: %w", err)
	}
	if story == nil {
		return nil, ErrNotFound
	}
	if story.AuthorID != userID && role != string(entity.RoleAdmin) {
		return nil, ErrForbidden
	}
	return story, nil
}
