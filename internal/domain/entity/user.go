package entity

import "time"

const (
	RoleFarmer = "farmer"
	RoleBuyer  = "buyer"
	RoleWorker = "worker"
	RoleDoctor = "doctor"
	RoleAdmin  = "admin"
)

type UserLocation struct {
	Village  string `json:"village,omitempty" firestore:"village,omitempty"`
	District string `json:"district,omitempty" firestore:"district,omitempty"`
	State    string `json:"state,omitempty" firestore:"state,omitempty"`
}

// User is a profile document keyed by the Firebase uid.
type User struct {
	ID        string       `json:"id" firestore:"id"`
	Name      string       `json:"name" firestore:"name"`
	Email     string       `json:"email,omitempty" firestore:"email"`
	Phone     string       `json:"phone,omitempty" firestore:"phone"`
	Role      string       `json:"role" firestore:"role"`
	Location  UserLocation `json:"location,omitempty" firestore:"location"`
	AvatarURL string       `json:"avatar_url,omitempty" firestore:"avatarUrl"`
	Bio       string       `json:"bio,omitempty" firestore:"bio"`
	IsActive  bool         `json:"is_active" firestore:"isActive"`
	CreatedAt time.Time    `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time    `json:"updated_at" firestore:"updatedAt"`
}

// Summary is the trimmed view embedded in chat and message responses.
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
	}
}
