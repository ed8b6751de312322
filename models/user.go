package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleClient Role = "client"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email" gorm:"unique"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Verified  bool      `json:"verified"`
	Services  []Service `json:"services,omitempty" gorm:"foreignKey:VendorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser builds a user with the verification flag derived from the role.
// Vendors start unverified and stay that way until an admin accepts them;
// clients and admins never need verification.
func NewUser(fullName, email, phone, hashedPassword string, role Role) User {
	if role == "" {
		role = RoleClient
	}
	return User{
		FullName: strings.TrimSpace(fullName),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Phone:    strings.TrimSpace(phone),
		Password: hashedPassword,
		Role:     role,
		Verified: role != RoleVendor,
	}
}

// IsVerified is the verification predicate used by authorization checks.
// Only vendors carry a meaningful verified flag.
func (u *User) IsVerified() bool {
	if u.Role != RoleVendor {
		return true
	}
	return u.Verified
}
