package repository

import (
	"context"
	"fmt"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/database"
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Article, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, article *entity.Article) error
	UpdateTranslations(ctx context.Context, id uuid.UUID, translations locale.Translations) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type articleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewArticleRepository(db database.PgxIface, log *zap.Logger) ArticleRepository {
	return &articleRepository{
		db:  db,
		log: log.With(zap.String("repository", "article")),
	}
}

const articleColumns = `id, slug, author_id, default_language, title, content, excerpt, cover_url, category, status, published_at, view_count, translations, created_at, updated_at, deleted_at`

func scanArticle(row pgx.Row) (*entity.Article, error) {
	var article entity.Article
	var rawTranslations []byte
	err := row.Scan(
		&article.ID,
		&article.Slug,
		&article.AuthorID,
		&article.DefaultLanguage,
		&article.Title,
		&article.Content,
		&article.Excerpt,
		&article.CoverURL,
		&article.Category,
		&article.Status,
		&article.PublishedAt,
		&article.ViewCount,
		&rawTranslations,
		&article.CreatedAt,
		&article.UpdatedAt,
		&article.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := scanTranslations(rawTranslations, &article.Translations); err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	translations, err := marshalTranslations(article.Translations)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO articles (id, slug, author_id, default_language, title, content, excerpt, cover_url, category, status, published_at, view_count, translations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = r.db.Exec(ctx, query,
		article.ID,
		article.Slug,
		article.AuthorID,
		article.DefaultLanguage,
		article.Title,
		article.Content,
		article.Excerpt,
		article.CoverURL,
		article.Category,
		article.Status,
		article.PublishedAt,
		article.ViewCount,
		translations,
		article.CreatedAt,
		article.UpdatedAt,
	)

	if err != nil {
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to create article",
			zap.Error(err),
			zap.String("slug", article.Slug),
		)
		return fmt.Errorf("create article %s: %w", article.Slug, err)
	}

	return nil
}

func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE id = $1 AND deleted_at IS NULL`, articleColumns)

	article, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find article by ID",
			zap.Error(err),
			zap.String("article_id", id.String()),
		)
		return nil, fmt.Errorf("find article by ID %s: %w", id.String(), err)
	}

	return article, nil
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE slug = $1 AND deleted_at IS NULL`, articleColumns)

	article, err := scanArticle(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		r.log.Error("Failed to find article by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find article by slug %s: %w", slug, err)
	}

	return article, nil
}

func (r *articleRepository) List(ctx context.Context, limit, offset int) ([]*entity.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE status = 'published' AND deleted_at IS NULL
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`, articleColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list articles",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []*entity.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			r.log.Error("Failed to scan article row", zap.Error(err))
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		articles = append(articles, article)
	}

	return articles, nil
}

func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM articles WHERE status = 'published' AND deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count articles", zap.Error(err))
		return 0, fmt.Errorf("count articles: %w", err)
	}

	return count, nil
}

func (r *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	translations, err := marshalTranslations(article.Translations)
	if err != nil {
		return err
	}

	query := `
		UPDATE articles
		SET slug = $2, default_language = $3, title = $4, content = $5, excerpt = $6,
		    cover_url = $7, category = $8, status = $9, published_at = $10,
		    translations = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		article.ID,
		article.Slug,
		article.DefaultLanguage,
		article.Title,
		article.Content,
		article.Excerpt,
		article.CoverURL,
		article.Category,
		article.Status,
		article.PublishedAt,
		translations,
		article.UpdatedAt,
	)

	if err != nil {
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to update article",
			zap.Error(err),
			zap.String("article_id", article.ID.String()),
		)
		return fmt.Errorf("update article %s: %w", article.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("article %s not found", article.ID.String())
	}

	return nil
}

func (r *articleRepository) UpdateTranslations(ctx context.Context, id uuid.UUID, translations locale.Translations) error {
	raw, err := marshalTranslations(translations)
	if err != nil {
		return err
	}

	query := `UPDATE articles SET translations = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, raw)
	if err != nil {
		r.log.Error("Failed to update article translations",
			zap.Error(err),
			zap.String("article_id", id.String()),
		)
		return fmt.Errorf("update article %s translations: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("article %s not found", id.String())
	}

	return nil
}

// IncrementViews relies on the database to keep the counter atomic under
// concurrent reads.
func (r *articleRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE articles SET view_count = view_count + 1 WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.log.Error("Failed to increment article views",
			zap.Error(err),
			zap.String("article_id", id.String()),
		)
		return fmt.Errorf("increment views for article %s: %w", id.String(), err)
	}

	return nil
}

func (r *articleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		r.log.Error("Failed to check article slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return false, fmt.Errorf("check article slug %s: %w", slug, err)
	}

	return exists, nil
}

func (r *articleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE articles SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete article",
			zap.Error(err),
			zap.String("article_id", id.String()),
		)
		return fmt.Errorf("delete article %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("article %s not found", id.String())
	}

	r.log.Info("Article deleted", zap.String("article_id", id.String()))
	return nil
}
