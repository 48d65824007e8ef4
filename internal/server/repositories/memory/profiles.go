package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

type profilesRepo struct {
	m  *RepositoryManager
	db dbx.DBTX
}

func (r *profilesRepo) Create(ctx context.Context, p *models.Profile) error {
	defer r.m.write(r.db)()

	if _, ok := r.m.data.users[p.UserID]; !ok {
		return common.ErrorNotFound
	}
	p.CreatedAt = r.m.now()
	p.UpdatedAt = p.CreatedAt
	c := *p
	r.m.data.profiles[p.UserID] = &c
	return nil
}

func (r *profilesRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	defer r.m.read(r.db)()

	p, ok := r.m.data.profiles[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *p
	return &c, nil
}

func (r *profilesRepo) Update(ctx context.Context, p *models.Profile) error {
	defer r.m.write(r.db)()

	cur, ok := r.m.data.profiles[p.UserID]
	if !ok {
		return common.ErrorNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = r.m.now()
	c := *p
	r.m.data.profiles[p.UserID] = &c
	return nil
}

func (r *profilesRepo) ListBelovedOf(ctx context.Context, accountID string) ([]*models.Profile, error) {
	defer r.m.read(r.db)()

	var out []*models.Profile
	for userID := range r.m.data.beloved[accountID] {
		if p, ok := r.m.data.profiles[userID]; ok {
			c := *p
			out = append(out, &c)
		}
	}
	slices.SortFunc(out, func(a, b *models.Profile) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.UserID, b.UserID))
	})
	return out, nil
}
