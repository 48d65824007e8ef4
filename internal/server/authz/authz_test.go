package authz

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGraph struct {
	accounts map[string]*models.Account
	memories map[string]*models.Memory
	beloved  map[string][]string
	err      error
}

func (g *fakeGraph) Account(_ context.Context, id string) (*models.Account, error) {
	if g.err != nil {
		return nil, g.err
	}
	a, ok := g.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return a, nil
}

func (g *fakeGraph) Memory(_ context.Context, id string) (*models.Memory, error) {
	m, ok := g.memories[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return m, nil
}

func (g *fakeGraph) IsBelovedOne(_ context.Context, accountID, userID string) (bool, error) {
	for _, u := range g.beloved[accountID] {
		if u == userID {
			return true, nil
		}
	}
	return false, nil
}

func (g *fakeGraph) HasBelovedReader(ctx context.Context, ownerID, userID string) (bool, error) {
	for id, a := range g.accounts {
		if a.OwnerID != ownerID || !a.IsActive {
			continue
		}
		if ok, _ := g.IsBelovedOne(ctx, id, userID); ok {
			return true, nil
		}
	}
	return false, nil
}

// family: alice owns acc1 (active) with bob as beloved one; acc2 is inactive.
func newFamily() *fakeGraph {
	return &fakeGraph{
		accounts: map[string]*models.Account{
			"acc1": {ID: "acc1", OwnerID: "alice", IsActive: true},
			"acc2": {ID: "acc2", OwnerID: "alice", IsActive: false},
		},
		memories: map[string]*models.Memory{
			"m1": {ID: "m1", AccountID: "acc1", IsActive: true},
			"m2": {ID: "m2", AccountID: "acc1", IsActive: false},
			"m3": {ID: "m3", AccountID: "acc2", IsActive: true},
		},
		beloved: map[string][]string{
			"acc1": {"bob"},
			"acc2": {"dave"},
		},
	}
}

func TestEvaluate_DecisionTable(t *testing.T) {
	e := NewEvaluator(newFamily())
	ctx := context.Background()

	resources := []Resource{
		AccountResource(&models.Account{ID: "acc1"}),
		CharacterResource(&models.Character{ID: "c1", AccountID: "acc1"}),
		MemoryResource(&models.Memory{ID: "m1", AccountID: "acc1"}),
		VideoResource(&models.Video{ID: "v1", MemoryID: "m1"}),
	}

	tests := []struct {
		actor string
		op    Operation
		role  Role
		want  error
	}{
		{"alice", OpRead, RoleOwner, nil},
		{"alice", OpWrite, RoleOwner, nil},
		{"bob", OpRead, RoleBelovedOne, nil},
		{"bob", OpWrite, RoleBelovedOne, common.ErrForbidden},
		{"carol", OpRead, RoleUnrelated, common.ErrForbidden},
		{"carol", OpWrite, RoleUnrelated, common.ErrForbidden},
	}

	for _, res := range resources {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%s/%s", res.Kind, tt.actor, tt.op), func(t *testing.T) {
				d, err := e.Evaluate(ctx, Actor{UserID: tt.actor}, res, tt.op)
				require.NoError(t, err)
				assert.Equal(t, tt.role, d.Role)
				assert.Equal(t, tt.want == nil, d.Allowed)
				assert.Equal(t, tt.want, d.Err())
			})
		}
	}
}

func TestEvaluate_Anonymous(t *testing.T) {
	e := NewEvaluator(newFamily())

	d, err := e.Evaluate(context.Background(), Actor{}, AccountResource(&models.Account{ID: "acc1"}), OpRead)
	require.NoError(t, err)
	assert.ErrorIs(t, d.Err(), common.ErrUnauthenticated)
}

func TestEvaluate_UnreachableGoverningAccount(t *testing.T) {
	e := NewEvaluator(newFamily())
	ctx := context.Background()

	tests := []struct {
		name string
		res  Resource
	}{
		{"inactive account", AccountResource(&models.Account{ID: "acc2"})},
		{"missing account", CharacterResource(&models.Character{ID: "c1", AccountID: "nope"})},
		{"video under inactive memory", VideoResource(&models.Video{ID: "v1", MemoryID: "m2"})},
		{"video under inactive account", VideoResource(&models.Video{ID: "v1", MemoryID: "m3"})},
		{"video under missing memory", VideoResource(&models.Video{ID: "v1", MemoryID: "nope"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := e.Evaluate(ctx, Actor{UserID: "alice"}, tt.res, OpRead)
			require.NoError(t, err)
			assert.ErrorIs(t, d.Err(), common.ErrorNotFound)
		})
	}
}

func TestEvaluate_Profile(t *testing.T) {
	e := NewEvaluator(newFamily())
	ctx := context.Background()
	profile := ProfileResource("alice")

	tests := []struct {
		actor string
		op    Operation
		want  error
	}{
		{"alice", OpWrite, nil},
		{"bob", OpRead, nil},
		{"bob", OpWrite, common.ErrForbidden},
		// dave is only beloved of an inactive account.
		{"dave", OpRead, common.ErrForbidden},
		{"carol", OpRead, common.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.actor+"/"+tt.op.String(), func(t *testing.T) {
			d, err := e.Evaluate(ctx, Actor{UserID: tt.actor}, profile, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Err())
		})
	}
}

func TestEvaluateCreate(t *testing.T) {
	e := NewEvaluator(newFamily())
	ctx := context.Background()

	tests := []struct {
		name   string
		actor  string
		parent Resource
		want   error
	}{
		{"owner", "alice", AccountResource(&models.Account{ID: "acc1"}), nil},
		{"beloved one", "bob", AccountResource(&models.Account{ID: "acc1"}), common.ErrForbidden},
		{"stranger", "carol", AccountResource(&models.Account{ID: "acc1"}), common.ErrForbidden},
		{"inactive parent", "alice", AccountResource(&models.Account{ID: "acc2"}), common.ErrMissingParent},
		{"missing parent", "alice", AccountResource(&models.Account{ID: "zzz"}), common.ErrMissingParent},
		{"video parent", "alice", MemoryResource(&models.Memory{ID: "m1", AccountID: "acc1"}), nil},
		{"video inactive memory", "alice", Resource{Kind: models.KindVideo, Parent: "m2"}, common.ErrMissingParent},
		{"anonymous", "", AccountResource(&models.Account{ID: "acc1"}), common.ErrUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := e.EvaluateCreate(ctx, Actor{UserID: tt.actor}, tt.parent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Err())
		})
	}
}

func TestEvaluateCreate_MissingParentIsBadRequest(t *testing.T) {
	e := NewEvaluator(newFamily())

	d, err := e.EvaluateCreate(context.Background(), Actor{UserID: "alice"}, AccountResource(&models.Account{ID: "zzz"}))
	require.NoError(t, err)
	assert.ErrorIs(t, d.Err(), common.ErrBadRequest)
}

func TestEvaluateAccountPatch(t *testing.T) {
	name := "Smiths"
	owner := "bob"

	assert.True(t, EvaluateAccountPatch(&models.AccountPatch{Name: &name}).Allowed)

	d := EvaluateAccountPatch(&models.AccountPatch{Name: &name, OwnerID: &owner})
	assert.ErrorIs(t, d.Err(), common.ErrForbidden)
	assert.ErrorIs(t, d.Err(), common.ErrProtectedField)
}

func TestEvaluate_StoreError(t *testing.T) {
	g := newFamily()
	g.err = errors.New("db down")
	e := NewEvaluator(g)

	_, err := e.Evaluate(context.Background(), Actor{UserID: "alice"}, AccountResource(&models.Account{ID: "acc1"}), OpRead)
	assert.EqualError(t, err, "db down")
}
