package services

import (
	"context"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/logging"
	"github.com/griotme/griot/internal/server/authz"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
	"github.com/griotme/griot/internal/server/validate"
)

// ProfileService reads and patches user profiles. Owners may write their
// own profile; beloved readers may read it.
type ProfileService struct {
	guard
	validator *validate.Validator
	log       logging.Logger
}

func NewProfileService(m repomanager.RepositoryManager, v *validate.Validator, l logging.Logger) *ProfileService {
	return &ProfileService{guard: newGuard(m), validator: v, log: l.With("module", "profiles")}
}

func (s *ProfileService) Get(ctx context.Context, actorID, userID string) (*models.Profile, error) {
	db := s.repos.Handle()
	p, err := s.repos.Profiles(db).GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, db, actorID, authz.ProfileResource(userID), authz.OpRead); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) Update(ctx context.Context, actorID, userID string, patch *models.ProfilePatch) (*models.Profile, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, err
	}

	var out *models.Profile
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		p, err := s.repos.Profiles(tx).GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if err := s.authorize(ctx, tx, actorID, authz.ProfileResource(userID), authz.OpWrite); err != nil {
			return err
		}
		if err := patch.Apply(p); err != nil {
			return common.BadRequestf("birth_date: %v", err)
		}
		if err := s.repos.Profiles(tx).Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
