package repository

import (
	"context"
	"fmt"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/database"

	"go.uber.org/zap"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	List(ctx context.Context) ([]*entity.Tag, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type tagRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTagRepository(db database.PgxIface, log *zap.Logger) TagRepository {
	return &tagRepository{
		db:  db,
		log: log.With(zap.String("repository", "tag")),
	}
}

func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	query := `INSERT INTO tags (id, name, slug, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, tag.ID, tag.Name, tag.Slug, tag.CreatedAt)
	if err != nil {
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to create tag",
			zap.Error(err),
			zap.String("slug", tag.Slug),
		)
		return fmt.Errorf("create tag %s: %w", tag.Slug, err)
	}

	return nil
}

func (r *tagRepository) List(ctx context.Context) ([]*entity.Tag, error) {
	query := `SELECT id, name, slug, created_at FROM tags ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list tags", zap.Error(err))
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []*entity.Tag
	for rows.Next() {
		var tag entity.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.CreatedAt); err != nil {
			r.log.Error("Failed to scan tag row", zap.Error(err))
			return nil, fmt.Errorf("scan tag row: %w", err)
		}
		tags = append(tags, &tag)
	}

	return tags, nil
}

func (r *tagRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tags WHERE slug = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		r.log.Error("Failed to check tag slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return false, fmt.Errorf("check tag slug %s: %w", slug, err)
	}

	return exists, nil
}
