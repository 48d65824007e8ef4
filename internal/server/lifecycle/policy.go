// Package lifecycle applies soft-delete visibility: an inactive account,
// character, memory or video is indistinguishable from a missing one.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
)

type Policy struct {
	m repomanager.RepositoryManager
}

func NewPolicy(m repomanager.RepositoryManager) *Policy {
	return &Policy{m: m}
}

func (p *Policy) Account(ctx context.Context, db dbx.DBTX, id string) (*models.Account, error) {
	a, err := p.m.Accounts(db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsActive {
		return nil, common.ErrorNotFound
	}
	return a, nil
}

func (p *Policy) Character(ctx context.Context, db dbx.DBTX, id string) (*models.Character, error) {
	c, err := p.m.Characters(db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, common.ErrorNotFound
	}
	return c, nil
}

func (p *Policy) Memory(ctx context.Context, db dbx.DBTX, id string) (*models.Memory, error) {
	m, err := p.m.Memories(db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsActive {
		return nil, common.ErrorNotFound
	}
	return m, nil
}

func (p *Policy) Video(ctx context.Context, db dbx.DBTX, id string) (*models.Video, error) {
	v, err := p.m.Videos(db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.IsActive {
		return nil, common.ErrorNotFound
	}
	return v, nil
}

// Deactivate flips the resource to inactive. A second call yields
// common.ErrorNotFound.
func (p *Policy) Deactivate(ctx context.Context, db dbx.DBTX, kind models.Kind, id string) error {
	switch kind {
	case models.KindAccount:
		return p.m.Accounts(db).Deactivate(ctx, id)
	case models.KindCharacter:
		return p.m.Characters(db).Deactivate(ctx, id)
	case models.KindMemory:
		return p.m.Memories(db).Deactivate(ctx, id)
	case models.KindVideo:
		return p.m.Videos(db).Deactivate(ctx, id)
	default:
		return fmt.Errorf("lifecycle: %q cannot be deactivated", kind)
	}
}
