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

const cacheKindArticle = "article"

type ArticleService interface {
	Create(ctx context.Context, authorID uuid.UUID, req *request.CreateArticleRequest) (*response.ArticleResponse, error)
	GetBySlug(ctx context.Context, slugVal, loc string) (*response.ArticleResponse, error)
	List(ctx context.Context, loc string, page request.PaginatedRequest) (*response.PaginatedResponse[response.ArticleResponse], error)
	Update(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpdateArticleRequest) (*response.ArticleResponse, error)
	UpsertTranslation(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpsertTranslationRequest) error
	Publish(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) (*response.ArticleResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) error
}

type articleService struct {
	repo  *repository.Repository
	slugs *slug.Assigner
	cache *cache.ContentCache
	log   *zap.Logger
}

func NewArticleService(repo *repository.Repository, slugs *slug.Assigner, contentCache *cache.ContentCache, log *zap.Logger) ArticleService {
	return &articleService{
		repo:  repo,
		slugs: slugs,
		cache: contentCache,
		log:   log,
	}
}

func (s *articleService) Create(ctx context.Context, authorID uuid.UUID, req *request.CreateArticleRequest) (*response.ArticleResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	slugVal, err := s.slugs.Assign(ctx, req.Title, s.repo.Article.SlugExists)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article := &entity.Article{
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
		Excerpt:         req.Excerpt,
		CoverURL:        req.CoverURL,
		Category:        req.Category,
		Status:          entity.ArticleStatusDraft,
		Translations:    req.Translations,
	}

	err = s.repo.Article.Create(ctx, article)
	if err == repository.ErrDuplicate {
		// lost the uniqueness race between the existence probe and the
		// insert; re-run assignment once against fresh state
		slugVal, err = s.slugs.Assign(ctx, req.Title, s.repo.Article.SlugExists)
		if err != nil {
			return nil, err
		}
		article.Slug = slugVal
		err = s.repo.Article.Create(ctx, article)
		if err == repository.ErrDuplicate {
			return nil, ErrSlugTaken
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.Info("Article created",
		zap.String("article_id", article.ID.String()),
		zap.String("slug", article.Slug))

	resolved := locale.Resolve(article.TranslatableContent(), article.DefaultLanguage)
	resp := response.ArticleToResponse(article, resolved)
	return &resp, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slugVal, loc string) (*response.ArticleResponse, error) {
	var cached response.ArticleResponse
	if s.cache.Get(ctx, cacheKindArticle, slugVal, loc, &cached) {
		if id, err := uuid.Parse(cached.ID); err == nil {
			if err := s.repo.Article.IncrementViews(ctx, id); err != nil {
				s.log.Warn("Failed to increment views", zap.Error(err), zap.String("slug", slugVal))
			}
		}
		return &cached, nil
	}

	article, err := s.repo.Article.FindBySlug(ctx, slugVal)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.Article.IncrementViews(ctx, article.ID); err != nil {
		s.log.Warn("Failed to increment views", zap.Error(err), zap.String("slug", slugVal))
	}

	resolved := locale.Resolve(article.TranslatableContent(), loc)
	resp := response.ArticleToResponse(article, resolved)

	s.cache.Set(ctx, cacheKindArticle, slugVal, loc, resp)

	return &resp, nil
}

func (s *articleService) List(ctx context.Context, loc string, page request.PaginatedRequest) (*response.PaginatedResponse[response.ArticleResponse], error) {
	articles, err := s.repo.Article.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	total, err := s.repo.Article.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	items := make([]response.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		resolved := locale.Resolve(article.TranslatableContent(), loc)
		items = append(items, response.ArticleToResponse(article, resolved))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *articleService) Update(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpdateArticleRequest) (*response.ArticleResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	article, err := s.loadOwned(ctx, userID, role, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Excerpt != nil {
		article.Excerpt = req.Excerpt
	}
	if req.CoverURL != nil {
		article.CoverURL = req.CoverURL
	}
	if req.Category != nil {
		article.Category = req.Category
	}
	article.UpdatedAt = time.Now().UTC()

	if err := s.repo.Article.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	s.cache.Invalidate(ctx, cacheKindArticle, article.Slug)

	resolved := locale.Resolve(article.TranslatableContent(), article.DefaultLanguage)
	resp := response.ArticleToResponse(article, resolved)
	return &resp, nil
}

func (s *articleService) UpsertTranslation(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID, req *request.UpsertTranslationRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	article, err := s.loadOwned(ctx, userID, role, id)
	if err != nil {
		return err
	}

	if article.Translations == nil {
		article.Translations = locale.Translations{}
	}
	article.Translations[req.Locale] = req.Fields

	if err := s.repo.Article.UpdateTranslations(ctx, article.ID, article.Translations); err != nil {
		return fmt.Errorf("update translations: %w", err)
	}

	s.cache.Invalidate(ctx, cacheKindArticle, article.Slug)

	return nil
}

func (s *articleService) Publish(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) (*response.ArticleResponse, error) {
	article, err := s.loadOwned(ctx, userID, role, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article.Status = entity.ArticleStatusPublished
	if article.PublishedAt == nil {
		article.PublishedAt = &now
	}
	article.UpdatedAt = now

	if err := s.repo.Article.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("publish article: %w", err)
	}

	s.cache.Invalidate(ctx, cacheKindArticle, article.Slug)

	s.log.Info("Article published",
		zap.String("article_id", article.ID.String()),
		zap.String("slug", article.Slug))

	resolved := locale.Resolve(article.TranslatableContent(), article.DefaultLanguage)
	resp := response.ArticleToResponse(article, resolved)
	return &resp, nil
}

func (s *articleService) Delete(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) error {
	article, err := s.loadOwned(ctx, userID, role, id)
	if err != nil {
		return err
	}

	if err := s.repo.Article.SoftDelete(ctx, article.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	s.cache.Invalidate(ctx, cacheKindArticle, article.Slug)

	return nil
}

// loadOwned fetches the article and enforces that the caller is its author
// or an admin.
func (s *articleService) loadOwned(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) (*entity.Article, error) {
	article, err := s.repo.Article.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	if article.AuthorID != userID && role != string(entity.RoleAdmin) {
		return nil, ErrForbidden
	}
	return article, nil
}
