package memory

import (
	"context"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

type videosRepo struct {
	m  *RepositoryManager
	db dbx.DBTX
}

func (r *videosRepo) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	defer r.m.write(r.db)()
	d := r.m.data

	if _, ok := d.memories[v.MemoryID]; !ok {
		return nil, common.ErrorNotFound
	}
	v.ID = d.newID()
	v.IsActive = true
	v.CreatedAt = r.m.now()
	stored := *v
	d.videos[v.ID] = &stored
	return v, nil
}

func (r *videosRepo) GetByID(ctx context.Context, id string) (*models.Video, error) {
	defer r.m.read(r.db)()

	v, ok := r.m.data.videos[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *v
	return &out, nil
}

func (r *videosRepo) Deactivate(ctx context.Context, id string) error {
	defer r.m.write(r.db)()

	v, ok := r.m.data.videos[id]
	if !ok || !v.IsActive {
		return common.ErrorNotFound
	}
	v.IsActive = false
	return nil
}

func (r *videosRepo) ListByMemory(ctx context.Context, memoryID string) ([]*models.Video, error) {
	defer r.m.read(r.db)()
	d := r.m.data

	var ids []string
	for id, v := range d.videos {
		if v.MemoryID == memoryID && v.IsActive {
			ids = append(ids, id)
		}
	}
	d.sortByOrder(ids)

	out := make([]*models.Video, 0, len(ids))
	for _, id := range ids {
		v := *d.videos[id]
		out = append(out, &v)
	}
	return out, nil
}
