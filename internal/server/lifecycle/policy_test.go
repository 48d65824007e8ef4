package lifecycle

import (
	"context"
	"testing"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	m       *memory.RepositoryManager
	p       *Policy
	account *models.Account
	char    *models.Character
	mem     *models.Memory
	video   *models.Video
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	m := memory.NewRepositoryManager()
	h := m.Handle()

	u, err := m.Users(h).Create(ctx, &models.User{Username: "alice", Email: "alice@x.com", IsActive: true})
	require.NoError(t, err)
	a, err := m.Accounts(h).Create(ctx, &models.Account{OwnerID: u.ID, Name: "Family"})
	require.NoError(t, err)
	c, err := m.Characters(h).Create(ctx, &models.Character{AccountID: a.ID, Name: "Grandma"})
	require.NoError(t, err)
	mem, err := m.Memories(h).Create(ctx, &models.Memory{AccountID: a.ID, Title: "Summer"})
	require.NoError(t, err)
	v, err := m.Videos(h).Create(ctx, &models.Video{MemoryID: mem.ID, FileKey: "k"})
	require.NoError(t, err)

	return &fixture{m: m, p: NewPolicy(m), account: a, char: c, mem: mem, video: v}
}

func TestDeactivate_ThenResolveIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	h := f.m.Handle()

	resolvers := []struct {
		kind    models.Kind
		id      string
		resolve func() error
	}{
		{models.KindVideo, f.video.ID, func() error { _, err := f.p.Video(ctx, h, f.video.ID); return err }},
		{models.KindCharacter, f.char.ID, func() error { _, err := f.p.Character(ctx, h, f.char.ID); return err }},
		{models.KindMemory, f.mem.ID, func() error { _, err := f.p.Memory(ctx, h, f.mem.ID); return err }},
		{models.KindAccount, f.account.ID, func() error { _, err := f.p.Account(ctx, h, f.account.ID); return err }},
	}

	for _, r := range resolvers {
		t.Run(string(r.kind), func(t *testing.T) {
			require.NoError(t, r.resolve())
			require.NoError(t, f.p.Deactivate(ctx, h, r.kind, r.id))

			assert.ErrorIs(t, r.resolve(), common.ErrorNotFound)
			assert.ErrorIs(t, f.p.Deactivate(ctx, h, r.kind, r.id), common.ErrorNotFound)
		})
	}
}

func TestResolve_UnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.p.Memory(context.Background(), f.m.Handle(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeactivate_Profile(t *testing.T) {
	f := newFixture(t)

	err := f.p.Deactivate(context.Background(), f.m.Handle(), models.KindProfile, "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}
