package authz

import (
	"context"

	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
)

// RepoGraph answers Graph queries from the repositories bound to db.
type RepoGraph struct {
	m  repomanager.RepositoryManager
	db dbx.DBTX
}

func NewRepoGraph(m repomanager.RepositoryManager, db dbx.DBTX) *RepoGraph {
	return &RepoGraph{m: m, db: db}
}

func (g *RepoGraph) Account(ctx context.Context, id string) (*models.Account, error) {
	return g.m.Accounts(g.db).GetByID(ctx, id)
}

func (g *RepoGraph) Memory(ctx context.Context, id string) (*models.Memory, error) {
	return g.m.Memories(g.db).GetByID(ctx, id)
}

func (g *RepoGraph) IsBelovedOne(ctx context.Context, accountID, userID string) (bool, error) {
	return g.m.Accounts(g.db).IsBelovedOne(ctx, accountID, userID)
}

func (g *RepoGraph) HasBelovedReader(ctx context.Context, ownerID, userID string) (bool, error) {
	return g.m.Accounts(g.db).HasBelovedReader(ctx, ownerID, userID)
}
