package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/zenatech-mv/site-backend/models"
)

// Sentinel errors surfaced by SignIn. Callers map both to the same 401; the
// distinction exists for logging.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAdmin           = errors.New("unauthorized: admin access required")
)

// IdentityStore resolves login credentials.
type IdentityStore interface {
	FindByEmail(email string) (*models.AuthIdentity, error)
}

// AdminUserStore resolves admin accounts. Implementations must treat inactive
// rows as absent.
type AdminUserStore interface {
	FindActiveByID(id uuid.UUID) (*models.AdminUser, error)
	FindActiveByEmail(email string) (*models.AdminUser, error)
	TouchLastLogin(id uuid.UUID) error
}

// SessionStore persists issued sessions; a missing row means the token has
// been revoked.
type SessionStore interface {
	Add(session *models.AdminSession) error
	FindByTokenID(tokenID string) (*models.AdminSession, error)
	DeleteByTokenID(tokenID string) error
}

// Service is the admin authentication gate. A caller is authenticated only
// when the session token verifies, its session row still exists, and an
// active admin_users row matches the identity.
type Service struct {
	identities IdentityStore
	admins     AdminUserStore
	sessions   SessionStore
	signingKey []byte
	ttl        time.Duration
	logger     zerolog.Logger
}

func NewService(identities IdentityStore, admins AdminUserStore, sessions SessionStore, signingKey []byte, ttl time.Duration) *Service {
	return &Service{
		identities: identities,
		admins:     admins,
		sessions:   sessions,
		signingKey: signingKey,
		ttl:        ttl,
		logger:     log.With().Str("service", "auth").Logger(),
	}
}

// SignIn verifies the password, mints a session, then checks the admin
// account. If the account is missing or inactive the freshly created session
// is torn down before the unauthorized error is returned; the transient
// session must not survive. A successful sign-in stamps last_login.
func (s *Service) SignIn(email, password string) (*models.AdminUser, string, error) {
	identity, err := s.identities.FindByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("look up identity: %w", err)
	}
	if identity == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenID, expiresAt, err := s.mintToken(identity.ID)
	if err != nil {
		return nil, "", fmt.Errorf("mint session token: %w", err)
	}

	session := &models.AdminSession{
		ID:        uuid.New(),
		UserID:    identity.ID,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Add(session); err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	adminUser, err := s.admins.FindActiveByEmail(email)
	if err != nil {
		s.teardown(tokenID)
		return nil, "", fmt.Errorf("look up admin account: %w", err)
	}
	if adminUser == nil {
		s.teardown(tokenID)
		s.logger.Warn().Str("email", email).Msg("Sign-in rejected: no active admin account")
		return nil, "", ErrNotAdmin
	}

	if err := s.admins.TouchLastLogin(adminUser.ID); err != nil {
		s.logger.Error().Err(err).Msg("Failed to update last_login")
	}

	return adminUser, token, nil
}

// CurrentUser resolves a session token to a validated admin account. Every
// failure path collapses to nil: a bad token, a revoked or expired session,
// and a missing or inactive admin row are indistinguishable to the caller.
func (s *Service) CurrentUser(token string) *models.AdminUser {
	userID, tokenID, ok := s.parseToken(token)
	if !ok {
		return nil
	}

	session, err := s.sessions.FindByTokenID(tokenID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to look up session")
		return nil
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return nil
	}

	adminUser, err := s.admins.FindActiveByID(userID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to look up admin account")
		return nil
	}
	return adminUser
}

// SignOut revokes the session backing the token. Unknown or malformed tokens
// are ignored.
func (s *Service) SignOut(token string) {
	_, tokenID, ok := s.parseToken(token)
	if !ok {
		return
	}
	s.teardown(tokenID)
}

func (s *Service) mintToken(userID uuid.UUID) (token, tokenID string, expiresAt time.Time, err error) {
	tokenID = uuid.NewString()
	expiresAt = time.Now().Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        tokenID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	return token, tokenID, expiresAt, err
}

func (s *Service) parseToken(token string) (userID uuid.UUID, tokenID string, ok bool) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, "", false
	}

	userID, err = uuid.Parse(claims.Subject)
	if err != nil || claims.ID == "" {
		return uuid.Nil, "", false
	}
	return userID, claims.ID, true
}

func (s *Service) teardown(tokenID string) {
	if err := s.sessions.DeleteByTokenID(tokenID); err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete session")
	}
}

// HashPassword produces a bcrypt hash for seeding credential rows.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
