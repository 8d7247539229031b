package repository

import (
	"context"
	"fmt"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *entity.Follow) error
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
}

type followRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFollowRepository(db database.PgxIface, log *zap.Logger) FollowRepository {
	return &followRepository{
		db:  db,
		log: log.With(zap.String("repository", "follow")),
	}
}

func (r *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	query := `
		INSERT INTO follows (id, follower_id, followee_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		follow.ID,
		follow.FollowerID,
		follow.FolloweeID,
		follow.CreatedAt,
	)

	if err != nil {
		// duplicate follow is the idempotency signal, not a failure worth logging
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to create follow",
			zap.Error(err),
			zap.String("follower_id", follow.FollowerID.String()),
			zap.String("followee_id", follow.FolloweeID.String()),
		)
		return fmt.Errorf("create follow: %w", err)
	}

	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`

	if _, err := r.db.Exec(ctx, query, followerID, followeeID); err != nil {
		r.log.Error("Failed to delete follow",
			zap.Error(err),
			zap.String("follower_id", followerID.String()),
			zap.String("followee_id", followeeID.String()),
		)
		return fmt.Errorf("delete follow: %w", err)
	}

	return nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM follows WHERE followee_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count followers", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("count followers of %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count following", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("count following of %s: %w", userID.String(), err)
	}

	return count, nil
}
