package memory

import (
	"context"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

type usersRepo struct {
	m  *RepositoryManager
	db dbx.DBTX
}

func (r *usersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	defer r.m.write(r.db)()
	d := r.m.data

	for _, u := range d.users {
		if u.Username == user.Username {
			return nil, common.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return nil, common.ErrEmailTaken
		}
	}

	user.ID = d.newID()
	user.CreatedAt = r.m.now()
	c := *user
	d.users[user.ID] = &c
	return user, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	defer r.m.read(r.db)()

	u, ok := r.m.data.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *usersRepo) find(match func(*models.User) bool) (*models.User, error) {
	defer r.m.read(r.db)()

	for _, u := range r.m.data.users {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *usersRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	defer r.m.write(r.db)()

	u, ok := r.m.data.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}
