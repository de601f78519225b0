package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/events"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
)

// Service implements the token lifecycle: stateless access tokens, stateful
// refresh tokens tracked as session records in the identity store, rotation
// on every refresh, and bulk invalidation on logout.
type Service struct {
	db         *tenant.Database
	hasher     *PasswordHasher
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *slog.Logger
	bus        *events.EventBus
}

func NewService(db *tenant.Database, hasher *PasswordHasher, secret string, accessTTL, refreshTTL time.Duration, logger *slog.Logger, bus *events.EventBus) *Service {
	return &Service{
		db:         db,
		hasher:     hasher,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
		bus:        bus,
	}
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

func (s *Service) signToken(userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// SignAccessToken issues a short-lived stateless capability token. No
// session record is kept: the token stays valid by signature until natural
// expiry even after logout.
func (s *Service) SignAccessToken(userID string) (string, error) {
	return s.signToken(userID, tokenTypeAccess, s.accessTTL)
}

// VerifyAccessToken is a pure signature and expiry check with no session
// store dependency.
func (s *Service) VerifyAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, internal.ErrInvalidAccessToken.WithCause(err)
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, internal.ErrInvalidAccessToken
	}
	return claims, nil
}

// SignRefreshToken issues a long-lived token and records a session for it in
// the identity store. The token is usable only while that record exists.
func (s *Service) SignRefreshToken(userID string) (string, error) {
	token, err := s.signToken(userID, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return "", err
	}

	authData := s.db.Auth()
	authData.Sessions = append(authData.Sessions, datamodel.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	})
	if err := s.db.WriteAuth(); err != nil {
		return "", err
	}

	return token, nil
}

// VerifyRefreshToken checks the session store before touching the JWT: a
// token removed from the store is indistinguishable from one that never
// existed.
func (s *Service) VerifyRefreshToken(tokenString string) (*Claims, error) {
	if s.findSession(tokenString) == nil {
		return nil, internal.ErrInvalidRefreshToken
	}
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, internal.ErrInvalidRefreshToken.WithCause(err)
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, internal.ErrInvalidRefreshToken
	}
	return claims, nil
}

func (s *Service) findSession(token string) *datamodel.Session {
	sessions := s.db.Auth().Sessions
	for i := range sessions {
		if sessions[i].Token == token {
			return &sessions[i]
		}
	}
	return nil
}

func (s *Service) findUserByEmail(email string) *datamodel.User {
	users := s.db.Auth().Users
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}

func (s *Service) findUserByID(id string) *datamodel.User {
	users := s.db.Auth().Users
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

func (s *Service) issuePayload(user *datamodel.User) (*AuthPayload, error) {
	accessToken, err := s.SignAccessToken(user.ID)
	if err != nil {
		return nil, internal.NewInternalError("failed to sign access token", err)
	}
	refreshToken, err := s.SignRefreshToken(user.ID)
	if err != nil {
		return nil, internal.NewInternalError("failed to sign refresh token", err)
	}
	return &AuthPayload{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         toSafeUser(user),
	}, nil
}

// Register provisions a user and logs them straight in.
func (s *Service) Register(dto RegisterDTO) (*AuthPayload, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if s.findUserByEmail(dto.Email) != nil {
		return nil, internal.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	user := datamodel.User{
		ID:           uuid.NewString(),
		Email:        dto.Email,
		PasswordHash: hash,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Note:         dto.Note,
	}
	authData := s.db.Auth()
	authData.Users = append(authData.Users, user)
	if err := s.db.WriteAuth(); err != nil {
		return nil, internal.NewInternalError("failed to persist user", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	s.publish(events.NewUserRegistered(user.ID, user.Email))

	return s.issuePayload(&user)
}

// Authenticate verifies credentials and issues a fresh token pair. A missing
// user and a wrong password produce the same error so accounts cannot be
// enumerated.
func (s *Service) Authenticate(dto LoginDTO) (*AuthPayload, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user := s.findUserByEmail(dto.Email)
	if user == nil {
		return nil, internal.ErrInvalidCredentials
	}
	if !s.hasher.Compare(dto.Password, user.PasswordHash) {
		return nil, internal.ErrInvalidCredentials
	}

	return s.issuePayload(user)
}

// Refresh rotates a refresh token: the presented token's session record is
// deleted before a new pair is issued, so each refresh token is redeemable
// exactly once.
func (s *Service) Refresh(refreshToken string) (*AuthPayload, error) {
	claims, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.removeSession(refreshToken); err != nil {
		return nil, err
	}

	user := s.findUserByID(claims.UserID)
	if user == nil {
		// Orphaned session: the user was deleted after issuance. Fail
		// closed; the record was already removed above.
		return nil, internal.ErrInvalidRefreshToken
	}

	return s.issuePayload(user)
}

func (s *Service) removeSession(token string) error {
	authData := s.db.Auth()
	kept := authData.Sessions[:0]
	for _, sess := range authData.Sessions {
		if sess.Token != token {
			kept = append(kept, sess)
		}
	}
	authData.Sessions = kept
	return s.db.WriteAuth()
}

// InvalidateAllSessions removes every session of the user and returns how
// many were removed. Nothing is persisted when no record matched.
func (s *Service) InvalidateAllSessions(userID string) (int, error) {
	authData := s.db.Auth()
	kept := make([]datamodel.Session, 0, len(authData.Sessions))
	for _, sess := range authData.Sessions {
		if sess.UserID != userID {
			kept = append(kept, sess)
		}
	}

	removed := len(authData.Sessions) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	authData.Sessions = kept
	if err := s.db.WriteAuth(); err != nil {
		return 0, err
	}

	s.publish(events.NewSessionsRevoked(userID, removed))
	return removed, nil
}

// Logout revokes every session of the token's owner, not just the presented
// token: logging out logs out everywhere.
func (s *Service) Logout(refreshToken string) error {
	claims, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return err
	}

	if _, err := s.InvalidateAllSessions(claims.UserID); err != nil {
		return err
	}

	s.logger.Info("user logged out", "user_id", claims.UserID)
	return nil
}

func (s *Service) GetUser(id string) (*SafeUser, error) {
	user := s.findUserByID(id)
	if user == nil {
		return nil, internal.NewRecordNotFoundError("user")
	}
	safe := toSafeUser(user)
	return &safe, nil
}

func (s *Service) ListUsers() []SafeUser {
	users := s.db.Auth().Users
	out := make([]SafeUser, 0, len(users))
	for i := range users {
		out = append(out, toSafeUser(&users[i]))
	}
	return out
}

func (s *Service) UpdateProfile(dto UpdateProfileDTO) (*SafeUser, error) {
	user := s.findUserByID(dto.ID)
	if user == nil {
		return nil, internal.NewRecordNotFoundError("user")
	}

	if dto.FirstName != nil {
		user.FirstName = dto.FirstName
	}
	if dto.LastName != nil {
		user.LastName = dto.LastName
	}
	if dto.Note != nil {
		user.Note = dto.Note
	}
	if err := s.db.WriteAuth(); err != nil {
		return nil, internal.NewInternalError("failed to persist user", err)
	}

	safe := toSafeUser(user)
	return &safe, nil
}

func (s *Service) ChangePassword(dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	user := s.findUserByID(dto.ID)
	if user == nil {
		return internal.NewRecordNotFoundError("user")
	}
	if !s.hasher.Compare(dto.OldPassword, user.PasswordHash) {
		return internal.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(dto.NewPassword)
	if err != nil {
		return internal.NewInternalError("failed to hash password", err)
	}
	user.PasswordHash = hash
	return s.db.WriteAuth()
}

// DeleteUser removes the user record only. Session records of the user are
// intentionally left behind for compatibility with existing data files;
// Refresh fails closed on them.
func (s *Service) DeleteUser(id string) error {
	authData := s.db.Auth()
	for i := range authData.Users {
		if authData.Users[i].ID == id {
			authData.Users = append(authData.Users[:i], authData.Users[i+1:]...)
			return s.db.WriteAuth()
		}
	}
	return internal.NewRecordNotFoundError("user")
}

func (s *Service) publish(event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Warn("audit event publish failed", "event_type", event.EventType(), "error", err)
	}
}
