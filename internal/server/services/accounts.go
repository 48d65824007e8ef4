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

// AccountService manages accounts and their beloved-ones membership.
type AccountService struct {
	guard
	validator *validate.Validator
	log       logging.Logger
}

func NewAccountService(m repomanager.RepositoryManager, v *validate.Validator, l logging.Logger) *AccountService {
	return &AccountService{guard: newGuard(m), validator: v, log: l.With("module", "accounts")}
}

// Create makes the actor the owner of a new account.
func (s *AccountService) Create(ctx context.Context, actorID string, in *models.NewAccount) (*models.Account, error) {
	if actorID == "" {
		return nil, common.ErrUnauthenticated
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	a, err := s.repos.Accounts(s.repos.Handle()).Create(ctx, &models.Account{OwnerID: actorID, Name: in.Name})
	if err != nil {
		return nil, err
	}
	a.BelovedOnes = []string{}

	s.log.Info(ctx, "account created", "account_id", a.ID, "owner_id", actorID)
	return a, nil
}

func (s *AccountService) Get(ctx context.Context, actorID, id string) (*models.Account, error) {
	return s.load(ctx, s.repos.Handle(), actorID, id, authz.OpRead)
}

// load resolves the account, checks op and fills BelovedOnes.
func (s *AccountService) load(ctx context.Context, db dbx.DBTX, actorID, id string, op authz.Operation) (*models.Account, error) {
	a, err := s.policy.Account(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, db, actorID, authz.AccountResource(a), op); err != nil {
		return nil, err
	}
	if a.BelovedOnes, err = s.repos.Accounts(db).BelovedOnes(ctx, a.ID); err != nil {
		return nil, err
	}
	return a, nil
}

// Update applies a generic patch. Only the name may change here; the owner
// and the beloved ones are rejected even for the owner.
func (s *AccountService) Update(ctx context.Context, actorID, id string, patch *models.AccountPatch) (*models.Account, error) {
	var out *models.Account
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		a, err := s.load(ctx, tx, actorID, id, authz.OpWrite)
		if err != nil {
			return err
		}
		if err := authz.EvaluateAccountPatch(patch).Err(); err != nil {
			return err
		}
		if err := s.validator.Struct(patch); err != nil {
			return err
		}
		if patch.Name != nil {
			if err := s.repos.Accounts(tx).UpdateName(ctx, a.ID, *patch.Name); err != nil {
				return err
			}
			a.Name = *patch.Name
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AccountService) Deactivate(ctx context.Context, actorID, id string) error {
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		a, err := s.policy.Account(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.authorize(ctx, tx, actorID, authz.AccountResource(a), authz.OpWrite); err != nil {
			return err
		}
		return s.policy.Deactivate(ctx, tx, models.KindAccount, a.ID)
	})
	if err != nil {
		return err
	}
	s.log.Info(ctx, "account deactivated", "account_id", id)
	return nil
}

// ListForUser returns the active accounts the actor owns and those they
// are a beloved one of.
func (s *AccountService) ListForUser(ctx context.Context, actorID string) (*models.AccountsForUser, error) {
	if actorID == "" {
		return nil, common.ErrUnauthenticated
	}

	db := s.repos.Handle()
	repo := s.repos.Accounts(db)

	owned, err := repo.ListOwned(ctx, actorID)
	if err != nil {
		return nil, err
	}
	beloved, err := repo.ListBeloved(ctx, actorID)
	if err != nil {
		return nil, err
	}

	for _, list := range [][]*models.Account{owned, beloved} {
		for _, a := range list {
			if a.BelovedOnes, err = repo.BelovedOnes(ctx, a.ID); err != nil {
				return nil, err
			}
		}
	}
	return &models.AccountsForUser{Owned: owned, Beloved: beloved}, nil
}

// AddBelovedOne grants userID read access to the account. Adding an
// existing member succeeds without duplicating it.
func (s *AccountService) AddBelovedOne(ctx context.Context, actorID, accountID, userID string) (*models.Account, error) {
	return s.changeMembership(ctx, actorID, accountID, userID, true)
}

// RemoveBelovedOne revokes userID's access. Removing a non-member is
// common.ErrorNotFound.
func (s *AccountService) RemoveBelovedOne(ctx context.Context, actorID, accountID, userID string) (*models.Account, error) {
	return s.changeMembership(ctx, actorID, accountID, userID, false)
}

func (s *AccountService) changeMembership(ctx context.Context, actorID, accountID, userID string, add bool) (*models.Account, error) {
	var out *models.Account
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		a, err := s.load(ctx, tx, actorID, accountID, authz.OpWrite)
		if err != nil {
			return err
		}

		repo := s.repos.Accounts(tx)
		if add {
			u, err := s.repos.Users(tx).GetByID(ctx, userID)
			if err != nil {
				return err
			}
			if !u.IsActive {
				return common.ErrorNotFound
			}
			err = repo.AddBelovedOne(ctx, a.ID, u.ID)
			if err != nil {
				return err
			}
		} else if err := repo.RemoveBelovedOne(ctx, a.ID, userID); err != nil {
			return err
		}

		if a.BelovedOnes, err = repo.BelovedOnes(ctx, a.ID); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "beloved ones changed", "account_id", accountID, "user_id", userID, "added", add)
	return out, nil
}

// ListBelovedOnes returns the profiles of the account's beloved ones.
func (s *AccountService) ListBelovedOnes(ctx context.Context, actorID, accountID string) ([]*models.Profile, error) {
	db := s.repos.Handle()
	a, err := s.policy.Account(ctx, db, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, db, actorID, authz.AccountResource(a), authz.OpRead); err != nil {
		return nil, err
	}

	out, err := s.repos.Profiles(db).ListBelovedOf(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*models.Profile{}
	}
	return out, nil
}
