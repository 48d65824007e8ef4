package memory

import (
	"context"
	"slices"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

type accountsRepo struct {
	m  *RepositoryManager
	db dbx.DBTX
}

func (r *accountsRepo) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	defer r.m.write(r.db)()
	d := r.m.data

	if _, ok := d.users[a.OwnerID]; !ok {
		return nil, common.ErrorNotFound
	}
	a.ID = d.newID()
	a.IsActive = true
	a.CreatedAt = r.m.now()
	c := *a
	c.BelovedOnes = nil
	d.accounts[a.ID] = &c
	return a, nil
}

func (r *accountsRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	defer r.m.read(r.db)()

	a, ok := r.m.data.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *a
	return &c, nil
}

func (r *accountsRepo) UpdateName(ctx context.Context, id string, name string) error {
	defer r.m.write(r.db)()

	a, ok := r.m.data.accounts[id]
	if !ok || !a.IsActive {
		return common.ErrorNotFound
	}
	a.Name = name
	return nil
}

func (r *accountsRepo) Deactivate(ctx context.Context, id string) error {
	defer r.m.write(r.db)()

	a, ok := r.m.data.accounts[id]
	if !ok || !a.IsActive {
		return common.ErrorNotFound
	}
	a.IsActive = false
	return nil
}

func (r *accountsRepo) ListOwned(ctx context.Context, userID string) ([]*models.Account, error) {
	return r.list(func(a *models.Account) bool { return a.OwnerID == userID })
}

func (r *accountsRepo) ListBeloved(ctx context.Context, userID string) ([]*models.Account, error) {
	return r.list(func(a *models.Account) bool {
		_, ok := r.m.data.beloved[a.ID][userID]
		return ok
	})
}

func (r *accountsRepo) list(match func(*models.Account) bool) ([]*models.Account, error) {
	defer r.m.read(r.db)()
	d := r.m.data

	var ids []string
	for id, a := range d.accounts {
		if a.IsActive && match(a) {
			ids = append(ids, id)
		}
	}
	d.sortByOrder(ids)

	out := make([]*models.Account, 0, len(ids))
	for _, id := range ids {
		c := *d.accounts[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *accountsRepo) BelovedOnes(ctx context.Context, accountID string) ([]string, error) {
	defer r.m.read(r.db)()

	ids := []string{}
	for id := range r.m.data.beloved[accountID] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *accountsRepo) IsBelovedOne(ctx context.Context, accountID, userID string) (bool, error) {
	defer r.m.read(r.db)()

	_, ok := r.m.data.beloved[accountID][userID]
	return ok, nil
}

func (r *accountsRepo) AddBelovedOne(ctx context.Context, accountID, userID string) error {
	defer r.m.write(r.db)()
	d := r.m.data

	if _, ok := d.accounts[accountID]; !ok {
		return common.ErrorNotFound
	}
	if _, ok := d.users[userID]; !ok {
		return common.ErrorNotFound
	}
	if d.beloved[accountID] == nil {
		d.beloved[accountID] = set{}
	}
	d.beloved[accountID][userID] = struct{}{}
	return nil
}

func (r *accountsRepo) RemoveBelovedOne(ctx context.Context, accountID, userID string) error {
	defer r.m.write(r.db)()

	members := r.m.data.beloved[accountID]
	if _, ok := members[userID]; !ok {
		return common.ErrorNotFound
	}
	delete(members, userID)
	return nil
}

func (r *accountsRepo) HasBelovedReader(ctx context.Context, ownerID, userID string) (bool, error) {
	defer r.m.read(r.db)()
	d := r.m.data

	for id, a := range d.accounts {
		if a.OwnerID != ownerID || !a.IsActive {
			continue
		}
		if _, ok := d.beloved[id][userID]; ok {
			return true, nil
		}
	}
	return false, nil
}
