package services

import (
	"context"
	"errors"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/logging"
	"github.com/griotme/griot/internal/server/authz"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
	"github.com/griotme/griot/internal/server/storage"
	"github.com/griotme/griot/internal/server/validate"
)

// MemoryService manages memories and their character links. Reads embed
// the memory's active characters and videos with download URLs.
type MemoryService struct {
	guard
	validator *validate.Validator
	blobs     storage.BlobStore
	log       logging.Logger
}

func NewMemoryService(m repomanager.RepositoryManager, v *validate.Validator, b storage.BlobStore, l logging.Logger) *MemoryService {
	return &MemoryService{guard: newGuard(m), validator: v, blobs: b, log: l.With("module", "memories")}
}

func (s *MemoryService) Create(ctx context.Context, actorID string, in *models.NewMemory) (*models.MemoryDetail, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	var out *models.Memory
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		parent := authz.AccountResource(&models.Account{ID: in.AccountID})
		if err := s.authorizeCreate(ctx, tx, actorID, parent); err != nil {
			return err
		}
		m, err := s.repos.Memories(tx).Create(ctx, &models.Memory{AccountID: in.AccountID, Title: in.Title})
		out = m
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "memory created", "memory_id", out.ID, "account_id", out.AccountID)
	return &models.MemoryDetail{Memory: out, Characters: []*models.Character{}, Videos: []*models.VideoLink{}}, nil
}

func (s *MemoryService) Get(ctx context.Context, actorID, id string) (*models.MemoryDetail, error) {
	db := s.repos.Handle()
	m, err := s.policy.Memory(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, db, actorID, authz.MemoryResource(m), authz.OpRead); err != nil {
		return nil, err
	}
	return s.detail(ctx, db, m)
}

// detail embeds active characters and videos.
func (s *MemoryService) detail(ctx context.Context, db dbx.DBTX, m *models.Memory) (*models.MemoryDetail, error) {
	chars, err := s.repos.Characters(db).ListByMemory(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	vids, err := s.repos.Videos(db).ListByMemory(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	links := make([]*models.VideoLink, 0, len(vids))
	for _, v := range vids {
		url, err := s.blobs.PresignGet(ctx, v.FileKey)
		if err != nil {
			return nil, err
		}
		links = append(links, &models.VideoLink{Video: v, URL: url})
	}
	return &models.MemoryDetail{Memory: m, Characters: chars, Videos: links}, nil
}

func (s *MemoryService) Update(ctx context.Context, actorID, id string, patch *models.MemoryPatch) (*models.MemoryDetail, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, err
	}

	var out *models.Memory
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		m, err := s.writable(ctx, tx, actorID, id)
		if err != nil {
			return err
		}
		if patch.Title != nil {
			if err := s.repos.Memories(tx).UpdateTitle(ctx, m.ID, *patch.Title); err != nil {
				return err
			}
			m.Title = *patch.Title
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, s.repos.Handle(), out)
}

func (s *MemoryService) Deactivate(ctx context.Context, actorID, id string) error {
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		m, err := s.writable(ctx, tx, actorID, id)
		if err != nil {
			return err
		}
		return s.policy.Deactivate(ctx, tx, models.KindMemory, m.ID)
	})
	if err != nil {
		return err
	}
	s.log.Info(ctx, "memory deactivated", "memory_id", id)
	return nil
}

func (s *MemoryService) writable(ctx context.Context, tx dbx.DBTX, actorID, id string) (*models.Memory, error) {
	m, err := s.policy.Memory(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, tx, actorID, authz.MemoryResource(m), authz.OpWrite); err != nil {
		return nil, err
	}
	return m, nil
}

// ListForUser returns the active memories of every active account the actor
// owns or is a beloved one of.
func (s *MemoryService) ListForUser(ctx context.Context, actorID string) ([]*models.MemoryDetail, error) {
	if actorID == "" {
		return nil, common.ErrUnauthenticated
	}

	db := s.repos.Handle()
	list, err := s.repos.Memories(db).ListForUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	out := make([]*models.MemoryDetail, 0, len(list))
	for _, m := range list {
		d, err := s.detail(ctx, db, m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// AddCharacter links an active character of the same account. Linking an
// already linked character is a no-op.
func (s *MemoryService) AddCharacter(ctx context.Context, actorID, memoryID, characterID string) (*models.MemoryDetail, error) {
	var out *models.Memory
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		m, err := s.writable(ctx, tx, actorID, memoryID)
		if err != nil {
			return err
		}

		c, err := s.repos.Characters(tx).GetByID(ctx, characterID)
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return common.BadRequestf("character %q does not exist", characterID)
		case err != nil:
			return err
		case !c.IsActive:
			return common.BadRequestf("character %q is not active", characterID)
		case c.AccountID != m.AccountID:
			return common.BadRequestf("character %q belongs to another account", characterID)
		}

		if err := s.repos.Memories(tx).AddCharacter(ctx, m.ID, c.ID); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, s.repos.Handle(), out)
}

// RemoveCharacter unlinks a character. Unlinking one that is not linked is
// a bad request.
func (s *MemoryService) RemoveCharacter(ctx context.Context, actorID, memoryID, characterID string) (*models.MemoryDetail, error) {
	var out *models.Memory
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		m, err := s.writable(ctx, tx, actorID, memoryID)
		if err != nil {
			return err
		}
		err = s.repos.Memories(tx).RemoveCharacter(ctx, m.ID, characterID)
		if errors.Is(err, common.ErrorNotFound) {
			return common.BadRequestf("character %q is not linked to this memory", characterID)
		}
		out = m
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, s.repos.Handle(), out)
}
