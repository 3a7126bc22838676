package domain

import "time"

// Role of a user account
type Role string

const (
	RoleGuest     Role = "guest"
	RoleClient    Role = "client"
	RoleTourAgent Role = "tour_agent"
	RoleManager   Role = "manager"
	RoleOperator  Role = "operator"
	RoleAdmin     Role = "admin"
)

// IsStaff returns true for roles allowed to manage bookings and see every tour
func (r Role) IsStaff() bool {
	switch r {
	case RoleTourAgent, RoleManager, RoleOperator, RoleAdmin:
		return true
	}
	return false
}

// User account
type User struct {
	ID           int64
	Username     string
	Email        string
	Phone        *string
	Role         Role
	RegisteredAt time.Time
}

// Favorite marks a tour saved by a user, unique per (user, tour)
type Favorite struct {
	UserID  int64
	TourID  int64
	AddedAt time.Time
}
