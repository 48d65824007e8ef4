package services

import (
	"context"
	"testing"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacter_CreateChecks(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	f := h.family(t)

	inactive, err := h.accounts.Create(ctx, f.alice.ID, &models.NewAccount{Name: "Old"})
	require.NoError(t, err)
	require.NoError(t, h.accounts.Deactivate(ctx, f.alice.ID, inactive.ID))

	tests := []struct {
		name  string
		actor string
		in    models.NewCharacter
		want  error
	}{
		{"beloved one", f.bob.ID, models.NewCharacter{AccountID: f.account.ID, Name: "Grandma"}, common.ErrForbidden},
		{"stranger", f.carol.ID, models.NewCharacter{AccountID: f.account.ID, Name: "Grandma"}, common.ErrForbidden},
		{"missing account", f.alice.ID, models.NewCharacter{AccountID: "nope", Name: "Grandma"}, common.ErrBadRequest},
		{"inactive account", f.alice.ID, models.NewCharacter{AccountID: inactive.ID, Name: "Grandma"}, common.ErrBadRequest},
		{"bad relationship", f.alice.ID, models.NewCharacter{AccountID: f.account.ID, Name: "Grandma", Relationship: "rival"}, common.ErrBadRequest},
		{"no name", f.alice.ID, models.NewCharacter{AccountID: f.account.ID}, common.ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			_, err := h.characters.Create(ctx, tt.actor, &in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCharacter_Lifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	f := h.family(t)

	c, err := h.characters.Create(ctx, f.alice.ID, &models.NewCharacter{
		AccountID:    f.account.ID,
		Name:         "Grandma",
		Relationship: models.RelationshipFamily,
	})
	require.NoError(t, err)

	got, err := h.characters.Get(ctx, f.bob.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grandma", got.Name)

	_, err = h.characters.Update(ctx, f.bob.ID, c.ID, &models.CharacterPatch{Name: ptr("Nana")})
	assert.ErrorIs(t, err, common.ErrForbidden)

	upd, err := h.characters.Update(ctx, f.alice.ID, c.ID, &models.CharacterPatch{Name: ptr("Nana"), Email: ptr("nana@x.com")})
	require.NoError(t, err)
	assert.Equal(t, "Nana", upd.Name)
	assert.Equal(t, models.RelationshipFamily, upd.Relationship)

	assert.ErrorIs(t, h.characters.Deactivate(ctx, f.bob.ID, c.ID), common.ErrForbidden)
	require.NoError(t, h.characters.Deactivate(ctx, f.alice.ID, c.ID))
	assert.ErrorIs(t, h.characters.Deactivate(ctx, f.alice.ID, c.ID), common.ErrorNotFound)

	_, err = h.characters.Update(ctx, f.alice.ID, c.ID, &models.CharacterPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = h.characters.Get(ctx, f.alice.ID, c.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCharacter_HiddenWhenAccountInactive(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	f := h.family(t)
	c := h.character(t, f, "Grandma")

	require.NoError(t, h.accounts.Deactivate(ctx, f.alice.ID, f.account.ID))

	_, err := h.characters.Get(ctx, f.bob.ID, c.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
