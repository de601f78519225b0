package datamodel

import "time"

// User lives in the identity store and survives workspace tag switches.
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"passwordHash"`
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// Session proves a refresh token was issued and not yet revoked. A refresh
// token with no matching session record is unusable regardless of its
// signature.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
