package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
	userpkg "github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/modules/account/user"
	jwtpkg "github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/pkg/jwt"
)

// Service implements the credential flows on top of the user store. All
// session state lives in the signed token; there is no server-side session
// table to create or invalidate.
type Service struct {
	users    *userpkg.Service
	tokenTTL time.Duration
}

func NewService(users *userpkg.Service, tokenTTL time.Duration) *Service {
	return &Service{users: users, tokenTTL: tokenTTL}
}

// Register creates the account and issues its first token.
func (s *Service) Register(ctx context.Context, dto *RegisterDTO) (*models.UserModel, string, error) {
	u, err := s.users.Create(ctx, dto.Email, dto.Password, dto.Name, models.RoleUser)
	if err != nil {
		return nil, "", err
	}
	token, err := s.issueToken(u)
	return u, token, err
}

// Login verifies credentials. Banned and frozen accounts are rejected before
// the password check so their status is not probeable by password guessing.
func (s *Service) Login(ctx context.Context, dto *LoginDTO) (*models.UserModel, string, error) {
	u, err := s.users.GetByEmail(ctx, dto.Email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", errInvalidCredentials
	}
	if u.IsFrozen {
		return nil, "", errAccountFrozen
	}
	if u.Role == models.RoleBanned {
		return nil, "", errAccountBanned
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return nil, "", errInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, u.ID); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(u)
	return u, token, err
}

// ChangePassword verifies the current password before storing the new hash.
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(current)); err != nil {
		return errInvalidCredentials
	}
	return s.users.SetPassword(ctx, userID, next)
}

// Refresh issues a fresh token for an already-authenticated caller.
func (s *Service) Refresh(ctx context.Context, userID string) (string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", errInvalidCredentials
	}
	return s.issueToken(u)
}

func (s *Service) issueToken(u *models.UserModel) (string, error) {
	return jwtpkg.Sign(u.ID, u.Email, u.Role, s.tokenTTL)
}

// TokenTTL exposes the configured token lifetime for cookie max-age.
func (s *Service) TokenTTL() time.Duration { return s.tokenTTL }
