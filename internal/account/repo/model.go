package repo

import "time"

// User is the row persisted in postgres. PasswordHash never leaves the
// service layer; the API maps users to sanitized views.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
