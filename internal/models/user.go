package models

import (
	"time"
)

// User represents a registered account. Only the bcrypt hash is stored;
// the hash never appears in API responses.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
