package models

import "time"

// User is a registered account. Usernames are unique case-insensitively
// via the normalized column.
type User struct {
	ID                 int    `gorm:"column:id;primaryKey"`
	Username           string `gorm:"column:username"`
	UsernameNormalized string `gorm:"column:username_normalized;uniqueIndex;size:255"`
	PasswordHash       string `gorm:"column:password_hash"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

// Session is an issued login token. Expired rows are deleted lazily when
// a request presents them, and in bulk by the `sessions purge` command.
type Session struct {
	ID         int       `gorm:"column:id;primaryKey"`
	UserID     int       `gorm:"column:user_id;index"`
	Token      string    `gorm:"column:token;uniqueIndex;size:64"`
	CreatedUTC time.Time `gorm:"column:created_utc"`
	ExpiresUTC time.Time `gorm:"column:expires_utc"`
}

// TableName overrides the table name.
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresUTC)
}

// RegisterRequest is the register endpoint payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the login endpoint payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	UserID       int    `json:"userId"`
	Username     string `json:"username"`
	SessionToken string `json:"sessionToken"`
}
