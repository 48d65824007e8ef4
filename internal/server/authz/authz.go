// Package authz decides whether an actor may read or write a resource.
//
// Every decision is derived from the governing account of the resource:
// the account itself, the account of a character or memory, or the account
// of the memory a video belongs to. Profiles are governed by their user.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/server/models"
)

type Role int

const (
	RoleUnrelated Role = iota
	RoleBelovedOne
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleBelovedOne:
		return "beloved_one"
	default:
		return "unrelated"
	}
}

type Operation int

const (
	OpRead Operation = iota
	OpWrite
)

func (o Operation) String() string {
	if o == OpWrite {
		return "write"
	}
	return "read"
}

// permissions is the decision table shared by every resource kind.
var permissions = map[Role]map[Operation]bool{
	RoleOwner:      {OpRead: true, OpWrite: true},
	RoleBelovedOne: {OpRead: true},
	RoleUnrelated:  {},
}

// Decision is the outcome of an evaluation. Reason is one of the
// common error kinds when Allowed is false.
type Decision struct {
	Allowed bool
	Role    Role
	Reason  error
}

func allow(role Role) Decision { return Decision{Allowed: true, Role: role} }

func deny(role Role, reason error) Decision {
	return Decision{Role: role, Reason: reason}
}

// Err returns nil for allowed decisions and the denial reason otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return d.Reason
}

// Actor is the caller. The zero value is anonymous.
type Actor struct {
	UserID string
}

func (a Actor) Authenticated() bool { return a.UserID != "" }

// Resource identifies what is being accessed. Parent is the next link up
// the ownership chain: the account of a character or memory, the memory of
// a video. Accounts and profiles leave it empty.
type Resource struct {
	Kind   models.Kind
	ID     string
	Parent string
}

func AccountResource(a *models.Account) Resource {
	return Resource{Kind: models.KindAccount, ID: a.ID}
}

func CharacterResource(c *models.Character) Resource {
	return Resource{Kind: models.KindCharacter, ID: c.ID, Parent: c.AccountID}
}

func MemoryResource(m *models.Memory) Resource {
	return Resource{Kind: models.KindMemory, ID: m.ID, Parent: m.AccountID}
}

func VideoResource(v *models.Video) Resource {
	return Resource{Kind: models.KindVideo, ID: v.ID, Parent: v.MemoryID}
}

func ProfileResource(userID string) Resource {
	return Resource{Kind: models.KindProfile, ID: userID}
}

// Graph is the read-only view of the store the evaluator needs. Account and
// Memory return inactive rows too.
type Graph interface {
	Account(ctx context.Context, id string) (*models.Account, error)
	Memory(ctx context.Context, id string) (*models.Memory, error)
	IsBelovedOne(ctx context.Context, accountID, userID string) (bool, error)
	HasBelovedReader(ctx context.Context, ownerID, userID string) (bool, error)
}

type Evaluator struct {
	graph Graph
}

func NewEvaluator(g Graph) *Evaluator {
	return &Evaluator{graph: g}
}

// Evaluate decides whether actor may perform op on res. The returned error
// is reserved for store failures; denials are reported in the Decision.
func (e *Evaluator) Evaluate(ctx context.Context, actor Actor, res Resource, op Operation) (Decision, error) {
	if !actor.Authenticated() {
		return deny(RoleUnrelated, common.ErrUnauthenticated), nil
	}

	var (
		role Role
		err  error
	)
	if res.Kind == models.KindProfile {
		role, err = e.profileRole(ctx, actor, res.ID)
	} else {
		var acc *models.Account
		acc, err = e.governingAccount(ctx, res)
		if errors.Is(err, common.ErrorNotFound) {
			return deny(RoleUnrelated, common.ErrorNotFound), nil
		}
		if err == nil {
			role, err = e.accountRole(ctx, actor, acc)
		}
	}
	if err != nil {
		return Decision{}, err
	}

	if permissions[role][op] {
		return allow(role), nil
	}
	return deny(role, common.ErrForbidden), nil
}

// EvaluateCreate checks that actor owns the account a new child resource
// would hang off. parent is the account for characters and memories and
// the memory for videos. A missing or inactive parent is a bad request.
func (e *Evaluator) EvaluateCreate(ctx context.Context, actor Actor, parent Resource) (Decision, error) {
	if !actor.Authenticated() {
		return deny(RoleUnrelated, common.ErrUnauthenticated), nil
	}

	acc, err := e.governingAccount(ctx, parent)
	if errors.Is(err, common.ErrorNotFound) {
		return deny(RoleUnrelated, common.ErrMissingParent), nil
	}
	if err != nil {
		return Decision{}, err
	}

	role, err := e.accountRole(ctx, actor, acc)
	if err != nil {
		return Decision{}, err
	}
	if role != RoleOwner {
		return deny(role, common.ErrForbidden), nil
	}
	return allow(role), nil
}

// EvaluateAccountPatch rejects generic updates that touch the owner or the
// beloved-ones set, whoever the caller is.
func EvaluateAccountPatch(p *models.AccountPatch) Decision {
	if p.TouchesProtectedFields() {
		return deny(RoleOwner, common.ErrProtectedField)
	}
	return allow(RoleOwner)
}

// governingAccount walks up the ownership chain. Any inactive link makes
// the resource unreachable.
func (e *Evaluator) governingAccount(ctx context.Context, res Resource) (*models.Account, error) {
	accountID := res.Parent
	switch res.Kind {
	case models.KindAccount:
		accountID = res.ID
	case models.KindCharacter, models.KindMemory:
	case models.KindVideo:
		m, err := e.graph.Memory(ctx, res.Parent)
		if err != nil {
			return nil, err
		}
		if !m.IsActive {
			return nil, common.ErrorNotFound
		}
		accountID = m.AccountID
	default:
		return nil, fmt.Errorf("authz: no governing account for %q", res.Kind)
	}

	acc, err := e.graph.Account(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !acc.IsActive {
		return nil, common.ErrorNotFound
	}
	return acc, nil
}

func (e *Evaluator) accountRole(ctx context.Context, actor Actor, acc *models.Account) (Role, error) {
	if acc.OwnerID == actor.UserID {
		return RoleOwner, nil
	}
	ok, err := e.graph.IsBelovedOne(ctx, acc.ID, actor.UserID)
	if err != nil {
		return RoleUnrelated, err
	}
	if ok {
		return RoleBelovedOne, nil
	}
	return RoleUnrelated, nil
}

func (e *Evaluator) profileRole(ctx context.Context, actor Actor, userID string) (Role, error) {
	if userID == actor.UserID {
		return RoleOwner, nil
	}
	ok, err := e.graph.HasBelovedReader(ctx, userID, actor.UserID)
	if err != nil {
		return RoleUnrelated, err
	}
	if ok {
		return RoleBelovedOne, nil
	}
	return RoleUnrelated, nil
}
