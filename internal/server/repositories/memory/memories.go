package memory

import (
	"context"
	"slices"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

type memoriesRepo struct {
	m  *RepositoryManager
	db dbx.DBTX
}

func (r *memoriesRepo) Create(ctx context.Context, mem *models.Memory) (*models.Memory, error) {
	defer r.m.write(r.db)()
	d := r.m.data

	if _, ok := d.accounts[mem.AccountID]; !ok {
		return nil, common.ErrorNotFound
	}
	mem.ID = d.newID()
	mem.IsActive = true
	mem.CreatedAt = r.m.now()
	mem.CharacterIDs = []string{}
	stored := *mem
	stored.CharacterIDs = nil
	d.memories[mem.ID] = &stored
	return mem, nil
}

// withLinks copies mem and fills CharacterIDs from the link table.
func (d *state) withLinks(mem *models.Memory) *models.Memory {
	out := *mem
	out.CharacterIDs = []string{}
	for id := range d.links[mem.ID] {
		out.CharacterIDs = append(out.CharacterIDs, id)
	}
	slices.Sort(out.CharacterIDs)
	return &out
}

func (r *memoriesRepo) GetByID(ctx context.Context, id string) (*models.Memory, error) {
	defer r.m.read(r.db)()

	mem, ok := r.m.data.memories[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.m.data.withLinks(mem), nil
}

func (r *memoriesRepo) UpdateTitle(ctx context.Context, id string, title string) error {
	defer r.m.write(r.db)()

	mem, ok := r.m.data.memories[id]
	if !ok || !mem.IsActive {
		return common.ErrorNotFound
	}
	mem.Title = title
	return nil
}

func (r *memoriesRepo) Deactivate(ctx context.Context, id string) error {
	defer r.m.write(r.db)()

	mem, ok := r.m.data.memories[id]
	if !ok || !mem.IsActive {
		return common.ErrorNotFound
	}
	mem.IsActive = false
	return nil
}

func (r *memoriesRepo) ListForUser(ctx context.Context, userID string) ([]*models.Memory, error) {
	defer r.m.read(r.db)()
	d := r.m.data

	var ids []string
	for id, mem := range d.memories {
		if !mem.IsActive {
			continue
		}
		a, ok := d.accounts[mem.AccountID]
		if !ok || !a.IsActive {
			continue
		}
		_, beloved := d.beloved[a.ID][userID]
		if a.OwnerID == userID || beloved {
			ids = append(ids, id)
		}
	}
	d.sortByOrder(ids)

	out := make([]*models.Memory, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.withLinks(d.memories[id]))
	}
	return out, nil
}

func (r *memoriesRepo) AddCharacter(ctx context.Context, memoryID, characterID string) error {
	defer r.m.write(r.db)()
	d := r.m.data

	if _, ok := d.memories[memoryID]; !ok {
		return common.ErrorNotFound
	}
	if _, ok := d.characters[characterID]; !ok {
		return common.ErrorNotFound
	}
	if d.links[memoryID] == nil {
		d.links[memoryID] = set{}
	}
	d.links[memoryID][characterID] = struct{}{}
	return nil
}

func (r *memoriesRepo) RemoveCharacter(ctx context.Context, memoryID, characterID string) error {
	defer r.m.write(r.db)()

	linked := r.m.data.links[memoryID]
	if _, ok := linked[characterID]; !ok {
		return common.ErrorNotFound
	}
	delete(linked, characterID)
	return nil
}
