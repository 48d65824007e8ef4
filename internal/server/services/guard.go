// Package services contains server-side business logic: sessions, profiles,
// accounts and their beloved ones, characters, memories and videos.
//
// Every operation resolves the addressed resource through the lifecycle
// policy first, so inactive resources are reported as not found before any
// permission check runs.
package services

import (
	"context"

	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/authz"
	"github.com/griotme/griot/internal/server/lifecycle"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
)

// guard bundles the store with the visibility and permission checks.
type guard struct {
	repos  repomanager.RepositoryManager
	policy *lifecycle.Policy
}

func newGuard(m repomanager.RepositoryManager) guard {
	return guard{repos: m, policy: lifecycle.NewPolicy(m)}
}

func (g guard) evaluator(db dbx.DBTX) *authz.Evaluator {
	return authz.NewEvaluator(authz.NewRepoGraph(g.repos, db))
}

func (g guard) authorize(ctx context.Context, db dbx.DBTX, userID string, res authz.Resource, op authz.Operation) error {
	d, err := g.evaluator(db).Evaluate(ctx, authz.Actor{UserID: userID}, res, op)
	if err != nil {
		return err
	}
	return d.Err()
}

func (g guard) authorizeCreate(ctx context.Context, db dbx.DBTX, userID string, parent authz.Resource) error {
	d, err := g.evaluator(db).EvaluateCreate(ctx, authz.Actor{UserID: userID}, parent)
	if err != nil {
		return err
	}
	return d.Err()
}
