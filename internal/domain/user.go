package domain

import "time"

type Role string

const (
	RoleHost  Role = "HOST"
	RoleGuest Role = "GUEST"
)

func (r Role) Valid() bool {
	return r == RoleHost || r == RoleGuest
}

type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	LoginID     string    `json:"login_id"`
	Password    string    `json:"-"`
	Role        Role      `json:"role"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
