package models

import "time"

const UserRoleAdmin = "admin"

// User is an admin account. The password hash never leaves the server; it is
// excluded from JSON serialization entirely.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
