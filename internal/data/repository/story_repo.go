package repository

import (
	"context"
	"fmt"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Story, error)
	ListApproved(ctx context.Context, limit, offset int) ([]*entity.Story, error)
	CountApproved(ctx context.Context) (int64, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*entity.Story, error)
	Update(ctx context.Context, story *entity.Story) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.StoryStatus) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type storyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoryRepository(db database.PgxIface, log *zap.Logger) StoryRepository {
	return &storyRepository{
		db:  db,
		log: log.With(zap.String("repository", "story")),
	}
}

const storyColumns = `id, slug, author_id, default_language, title, content, country_code, cover_url, status, translations, created_at, updated_at, deleted_at`

func scanStory(row pgx.Row) (*entity.Story, error) {
	var story entity.Story
	var rawTranslations []byte
	err := row.Scan(
		&story.ID,
		&story.Slug,
		&story.AuthorID,
		&story.DefaultLanguage,
		&story.Title,
		&story.Content,
		&story.CountryCode,
		&story.CoverURL,
		&story.Status,
		&rawTranslations,
		&story.CreatedAt,
		&story.UpdatedAt,
		&story.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := scanTranslations(rawTranslations, &story.Translations); err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *storyRepository) Create(ctx context.Context, story *entity.Story) error {
	translations, err := marshalTranslations(story.Translations)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO stories (id, slug, author_id, default_language, title, content, country_code, cover_url, status, translations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = r.db.Exec(ctx, query,
		story.ID,
		story.Slug,
		story.AuthorID,
		story.DefaultLanguage,
		story.Title,
		story.Content,
		story.CountryCode,
		story.CoverURL,
		story.Status,
		translations,
		story.CreatedAt,
		story.UpdatedAt,
	)

	if err != nil {
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to create story",
			zap.Error(err),
			zap.String("slug", story.Slug),
		)
		return fmt.Errorf("create story %s: %w", story.Slug, err)
	}

	return nil
}

func (r *storyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	query := fmt.Sprintf(`SELECT %s FROM stories WHERE id = $1 AND deleted_at IS NULL`, storyColumns)

	story, err := scanStory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find story by ID",
			zap.Error(err),
			zap.String("story_id", id.String()),
		)
		return nil, fmt.Errorf("find story by ID %s: %w", id.String(), err)
	}

	return story, nil
}

func (r *storyRepository) FindBySlug(ctx context.Context, slug string) (*entity.Story, error) {
	query := fmt.Sprintf(`SELECT %s FROM stories WHERE slug = $1 AND deleted_at IS NULL`, storyColumns)

	story, err := scanStory(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		r.log.Error("Failed to find story by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find story by slug %s: %w", slug, err)
	}

	return story, nil
}

func (r *storyRepository) ListApproved(ctx context.Context, limit, offset int) ([]*entity.Story, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM stories
		WHERE status = 'approved' AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, storyColumns)

	return r.queryStories(ctx, query, limit, offset)
}

func (r *storyRepository) CountApproved(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stories WHERE status = 'approved' AND deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count stories", zap.Error(err))
		return 0, fmt.Errorf("count approved stories: %w", err)
	}

	return count, nil
}

func (r *storyRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*entity.Story, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM stories
		WHERE author_id = $3 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, storyColumns)

	return r.queryStories(ctx, query, limit, offset, authorID)
}

func (r *storyRepository) queryStories(ctx context.Context, query string, args ...any) ([]*entity.Story, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list stories", zap.Error(err))
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	var stories []*entity.Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			r.log.Error("Failed to scan story row", zap.Error(err))
			return nil, fmt.Errorf("scan story row: %w", err)
		}
		stories = append(stories, story)
	}

	return stories, nil
}

func (r *storyRepository) Update(ctx context.Context, story *entity.Story) error {
	translations, err := marshalTranslations(story.Translations)
	if err != nil {
		return err
	}

	query := `
		UPDATE stories
		SET slug = $2, default_language = $3, title = $4, content = $5, country_code = $6,
		    cover_url = $7, translations = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		story.ID,
		story.Slug,
		story.DefaultLanguage,
		story.Title,
		story.Content,
		story.CountryCode,
		story.CoverURL,
		translations,
		story.UpdatedAt,
	)

	if err != nil {
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to update story",
			zap.Error(err),
			zap.String("story_id", story.ID.String()),
		)
		return fmt.Errorf("update story %s: %w", story.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("story %s not found", story.ID.String())
	}

	return nil
}

func (r *storyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.StoryStatus) error {
	query := `UPDATE stories SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update story status",
			zap.Error(err),
			zap.String("story_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update story %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("story %s not found", id.String())
	}

	return nil
}

func (r *storyRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stories WHERE slug = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		r.log.Error("Failed to check story slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return false, fmt.Errorf("check story slug %s: %w", slug, err)
	}

	return exists, nil
}

func (r *storyRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE stories SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete story",
			zap.Error(err),
			zap.String("story_id", id.String()),
		)
		return fmt.Errorf("delete story %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("story %s not found", id.String())
	}

	r.log.Info("Story deleted", zap.String("story_id", id.String()))
	return nil
}
