package memory

import (
	"context"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

type tokensRepo struct {
	m  *RepositoryManager
	db dbx.DBTX
}

func (r *tokensRepo) GetOrCreate(ctx context.Context, userID string, key string) (*models.Token, error) {
	defer r.m.write(r.db)()

	for _, t := range r.m.data.tokens {
		if t.UserID == userID {
			c := *t
			return &c, nil
		}
	}
	t := &models.Token{Key: key, UserID: userID, CreatedAt: r.m.now()}
	r.m.data.tokens[key] = t
	c := *t
	return &c, nil
}

func (r *tokensRepo) Find(ctx context.Context, key string) (*models.Token, error) {
	defer r.m.read(r.db)()

	t, ok := r.m.data.tokens[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (r *tokensRepo) Delete(ctx context.Context, key string) error {
	defer r.m.write(r.db)()

	if _, ok := r.m.data.tokens[key]; !ok {
		return common.ErrorNotFound
	}
	delete(r.m.data.tokens, key)
	return nil
}

func (r *tokensRepo) DeleteForUser(ctx context.Context, userID string) error {
	defer r.m.write(r.db)()

	for key, t := range r.m.data.tokens {
		if t.UserID == userID {
			delete(r.m.data.tokens, key)
		}
	}
	return nil
}
