package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/logging"
	"github.com/griotme/griot/internal/server/auth"
	"github.com/griotme/griot/internal/server/config"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/notify"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
	"github.com/griotme/griot/internal/server/validate"
)

// UserService handles registration, sessions and password resets.
type UserService struct {
	repos      repomanager.RepositoryManager
	validator  *validate.Validator
	resets     *auth.ResetTokens
	notifier   notify.Notifier
	bcryptCost int
	log        logging.Logger
}

func NewUserService(m repomanager.RepositoryManager, v *validate.Validator, n notify.Notifier,
	cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		repos:      m,
		validator:  v,
		resets:     auth.NewResetTokens(cfg.SecretKey, cfg.ResetTokenValidityDuration),
		notifier:   n,
		bcryptCost: cfg.BcryptCost,
		log:        l.With("module", "users"),
	}
}

// Create registers a user together with an empty profile. Username and
// email are lower-cased before validation and storage.
func (s *UserService) Create(ctx context.Context, in *models.NewUser) (*models.User, error) {
	in.Username = common.NormalizeIdentity(in.Username)
	in.Email = common.NormalizeIdentity(in.Email)

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}
	if err := s.validator.Password(in.Password, in.Username); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: in.Username, Email: in.Email, PasswordHash: hash, IsActive: true}
	err = s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repos.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.repos.Profiles(tx).Create(ctx, &models.Profile{
			UserID:   user.ID,
			Language: models.DefaultLanguage,
			Timezone: models.DefaultTimezone,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user created", "user_id", user.ID)
	return user, nil
}

// Authenticate returns the user's live session token, minting one if the
// user has none. Unknown users, inactive users and wrong passwords are all
// common.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.Token, error) {
	user, err := s.repos.Users(s.repos.Handle()).GetByUsername(ctx, common.NormalizeIdentity(username))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, common.ErrInvalidCredentials
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.log.Warn(ctx, "failed login", "user_id", user.ID)
		}
		return nil, err
	}

	key, err := auth.NewSessionKey()
	if err != nil {
		return nil, fmt.Errorf("session key: %w", err)
	}
	return s.repos.Tokens(s.repos.Handle()).GetOrCreate(ctx, user.ID, key)
}

// Logout revokes the session token key.
func (s *UserService) Logout(ctx context.Context, key string) error {
	err := s.repos.Tokens(s.repos.Handle()).Delete(ctx, key)
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrInvalidToken
	}
	return err
}

// ResolveToken maps a session token key to its active user.
func (s *UserService) ResolveToken(ctx context.Context, key string) (*models.User, error) {
	if key == "" {
		return nil, common.ErrMissingToken
	}

	db := s.repos.Handle()
	token, err := s.repos.Tokens(db).Find(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.repos.Users(db).GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, common.ErrInvalidToken
	}
	return user, nil
}

// RequestPasswordReset mints a reset token for the active user owning email
// and hands it to the notifier. It reports success whether or not the email
// is known.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repos.Users(s.repos.Handle()).GetByEmail(ctx, common.NormalizeIdentity(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Debug(ctx, "password reset for unknown email")
			return nil
		}
		return err
	}
	if !user.IsActive {
		return nil
	}

	token, err := s.resets.Generate(user.ID, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("reset token: %w", err)
	}
	if err := s.notifier.PasswordReset(ctx, user, token); err != nil {
		s.log.Error(ctx, "password reset delivery failed", "user_id", user.ID, "error", err)
	}
	return nil
}

// ConfirmPasswordReset sets a new password when token is a valid reset
// token for uid, then revokes the user's session.
func (s *UserService) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword string) error {
	user, err := s.repos.Users(s.repos.Handle()).GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidResetToken
		}
		return err
	}
	if !user.IsActive {
		return common.ErrInvalidResetToken
	}
	if err := s.resets.Verify(token, user.ID, user.PasswordHash); err != nil {
		return err
	}
	if err := s.validator.Password(newPassword, user.Username); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Users(tx).UpdatePassword(ctx, user.ID, hash); err != nil {
			return err
		}
		return s.repos.Tokens(tx).DeleteForUser(ctx, user.ID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "password reset", "user_id", user.ID)
	return nil
}
