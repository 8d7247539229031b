package entity

type Role string

const (
	RoleUser     Role = "user"
	RoleBusiness Role = "business"
	RoleAdmin    Role = "admin"
)

type User struct {
	Base
	Email        string  `db:"email"`
	Username     string  `db:"username"`
	PasswordHash string  `db:"password_hash"`
	FullName     *string `db:"full_name"`
	AvatarURL    *string `db:"avatar_url"`
	Bio          *string `db:"bio"`
	Role         Role    `db:"role"`
}
