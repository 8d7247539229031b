package response

import (
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
)

type AuthResponse struct {
	UserID    string      `json:"user_id"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Email     string      `json:"email"`
	Username  string      `json:"username"`
	Role      entity.Role `json:"role"`
}

type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FullName  *string     `json:"full_name,omitempty"`
	AvatarURL *string     `json:"avatar_url,omitempty"`
	Bio       *string     `json:"bio,omitempty"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type ProfileResponse struct {
	UserResponse
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func ProfileToResponse(user *entity.User, followers, following int64) ProfileResponse {
	return ProfileResponse{
		UserResponse: UserToResponse(user),
		Followers:    followers,
		Following:    following,
	}
}
