package models

import "time"

// User is an identity. Username and Email are stored lower-cased.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

// Token is the opaque session credential. A user has at most one.
type Token struct {
	Key       string
	UserID    string
	CreatedAt time.Time
}
