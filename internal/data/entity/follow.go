package entity

import (
	"github.com/google/uuid"
)

// Follow is one edge of the follow graph. Uniqueness of
// (follower_id, followee_id) is enforced by the database.
type Follow struct {
	BaseSimple
	FollowerID uuid.UUID `db:"follower_id"`
	FolloweeID uuid.UUID `db:"followee_id"`
}
