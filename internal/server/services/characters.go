package services

import (
	"context"

	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/logging"
	"github.com/griotme/griot/internal/server/authz"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
	"github.com/griotme/griot/internal/server/validate"
)

type CharacterService struct {
	guard
	validator *validate.Validator
	log       logging.Logger
}

func NewCharacterService(m repomanager.RepositoryManager, v *validate.Validator, l logging.Logger) *CharacterService {
	return &CharacterService{guard: newGuard(m), validator: v, log: l.With("module", "characters")}
}

// Create adds a character to an account the actor owns.
func (s *CharacterService) Create(ctx context.Context, actorID string, in *models.NewCharacter) (*models.Character, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	var out *models.Character
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		parent := authz.AccountResource(&models.Account{ID: in.AccountID})
		if err := s.authorizeCreate(ctx, tx, actorID, parent); err != nil {
			return err
		}

		c, err := s.repos.Characters(tx).Create(ctx, &models.Character{
			AccountID:    in.AccountID,
			Name:         in.Name,
			Relationship: in.Relationship,
			PhoneNumber:  in.PhoneNumber,
			Email:        in.Email,
			Picture:      in.Picture,
		})
		out = c
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "character created", "character_id", out.ID, "account_id", out.AccountID)
	return out, nil
}

func (s *CharacterService) Get(ctx context.Context, actorID, id string) (*models.Character, error) {
	db := s.repos.Handle()
	c, err := s.policy.Character(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, db, actorID, authz.CharacterResource(c), authz.OpRead); err != nil {
		return nil, err
	}
	return c, nil
}

// Update patches the character. Its account never changes.
func (s *CharacterService) Update(ctx context.Context, actorID, id string, patch *models.CharacterPatch) (*models.Character, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, err
	}

	var out *models.Character
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		c, err := s.policy.Character(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.authorize(ctx, tx, actorID, authz.CharacterResource(c), authz.OpWrite); err != nil {
			return err
		}
		patch.Apply(c)
		if err := s.repos.Characters(tx).Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CharacterService) Deactivate(ctx context.Context, actorID, id string) error {
	return s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		c, err := s.policy.Character(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.authorize(ctx, tx, actorID, authz.CharacterResource(c), authz.OpWrite); err != nil {
			return err
		}
		return s.policy.Deactivate(ctx, tx, models.KindCharacter, c.ID)
	})
}
