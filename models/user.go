package models

import "time"

// Role is the fixed set of user roles. A user's role never changes after creation.
type Role string

// Roles
const (
	RoleStudent   Role = "student"
	RoleCounselor Role = "counselor"
	RoleAdmin     Role = "admin"
)

// User holds the structure for the users collection
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Name      string    `json:"name" bson:"name" validate:"required"`
	Role      Role      `json:"role" bson:"role" validate:"required,oneof=student counselor admin"`
	AvatarURL string    `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Bio       string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Password  string    `json:"-" bson:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// IsCounselor reports whether the user can be messaged as a counselor
func (u User) IsCounselor() bool {
	return u.Role == RoleCounselor
}

// UserPatch holds the editable profile fields of a user. Nil fields are left untouched.
type UserPatch struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
}

// Apply returns a copy of u with the patch applied
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	return u
}
