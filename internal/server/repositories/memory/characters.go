package memory

import (
	"context"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

type charactersRepo struct {
	m  *RepositoryManager
	db dbx.DBTX
}

func (r *charactersRepo) Create(ctx context.Context, c *models.Character) (*models.Character, error) {
	defer r.m.write(r.db)()
	d := r.m.data

	if _, ok := d.accounts[c.AccountID]; !ok {
		return nil, common.ErrorNotFound
	}
	c.ID = d.newID()
	c.IsActive = true
	c.CreatedAt = r.m.now()
	stored := *c
	d.characters[c.ID] = &stored
	return c, nil
}

func (r *charactersRepo) GetByID(ctx context.Context, id string) (*models.Character, error) {
	defer r.m.read(r.db)()

	c, ok := r.m.data.characters[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *c
	return &out, nil
}

func (r *charactersRepo) Update(ctx context.Context, c *models.Character) error {
	defer r.m.write(r.db)()

	cur, ok := r.m.data.characters[c.ID]
	if !ok || !cur.IsActive {
		return common.ErrorNotFound
	}
	cur.Name = c.Name
	cur.Relationship = c.Relationship
	cur.PhoneNumber = c.PhoneNumber
	cur.Email = c.Email
	cur.Picture = c.Picture
	return nil
}

func (r *charactersRepo) Deactivate(ctx context.Context, id string) error {
	defer r.m.write(r.db)()

	c, ok := r.m.data.characters[id]
	if !ok || !c.IsActive {
		return common.ErrorNotFound
	}
	c.IsActive = false
	return nil
}

func (r *charactersRepo) ListByMemory(ctx context.Context, memoryID string) ([]*models.Character, error) {
	defer r.m.read(r.db)()
	d := r.m.data

	var ids []string
	for id := range d.links[memoryID] {
		if c, ok := d.characters[id]; ok && c.IsActive {
			ids = append(ids, id)
		}
	}
	d.sortByOrder(ids)

	out := make([]*models.Character, 0, len(ids))
	for _, id := range ids {
		c := *d.characters[id]
		out = append(out, &c)
	}
	return out, nil
}
