package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
)

// Claims carried by both access and refresh tokens. TokenType keeps the two
// kinds from substituting for each other despite the shared secret.
type Claims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// SafeUser is a user with the password hash stripped; the only user shape
// that ever leaves this package.
type SafeUser struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Note      *string `json:"note,omitempty"`
}

func toSafeUser(u *datamodel.User) SafeUser {
	return SafeUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Note:      u.Note,
	}
}

// AuthPayload is returned by Register, Authenticate and Refresh: a fresh
// token pair plus the owning user.
type AuthPayload struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	User         SafeUser `json:"user"`
}

// ServiceAPI is what the transport layer consumes.
type ServiceAPI interface {
	Register(dto RegisterDTO) (*AuthPayload, error)
	Authenticate(dto LoginDTO) (*AuthPayload, error)
	Refresh(refreshToken string) (*AuthPayload, error)
	Logout(refreshToken string) error
	VerifyAccessToken(token string) (*Claims, error)
	GetUser(id string) (*SafeUser, error)
	ListUsers() []SafeUser
	UpdateProfile(dto UpdateProfileDTO) (*SafeUser, error)
	ChangePassword(dto ChangePasswordDTO) error
	DeleteUser(id string) error
}
