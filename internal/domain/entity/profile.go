package entity

import (
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// Profile is the marketplace-side record for an authenticated user.
// The role is fixed at signup; there is no role-change flow.
type Profile struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	FullName  string    `json:"full_name" firestore:"fullName"`
	AvatarURL string    `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (p *Profile) IsSeller() bool {
	return p.Role == RoleSeller
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
