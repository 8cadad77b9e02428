package domain

import "time"

type User struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"`
	Disabled       bool      `json:"disabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Token is a record of an issued access token, kept for audit. The auth
// path validates JWTs by signature and expiry only and never reads back
// from this table.
type Token struct {
	ID          uint      `json:"id"`
	JTI         string    `json:"jti"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
