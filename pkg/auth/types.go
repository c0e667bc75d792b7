package auth

import "time"

// Company is a tenant. All users and projects hang off a company.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is an account within a company. PasswordHash never serializes.
// FirstName and LastName are optional at registration and stay null in
// the database when omitted.
type User struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Roles assigned to users within a company.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User account states. Only active users can log in.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// RegisterRequest is the payload for company + first-user registration.
// FirstName and LastName may be omitted.
type RegisterRequest struct {
	CompanyName string  `json:"companyName"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login
type AuthResponse struct {
	Token   string   `json:"token"`
	User    *User    `json:"user"`
	Company *Company `json:"company"`
}
