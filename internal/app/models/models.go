package models

// Role names used in JWT claims and route guards.
const (
	RoleAdmin   = "admin"
	RoleMentor  = "mentor"
	RoleStudent = "student"
)
