package models

import "time"

// Account is a family space. OwnerID never changes after creation.
type Account struct {
	ID          string
	OwnerID     string
	Name        string
	BelovedOnes []string
	IsActive    bool
	CreatedAt   time.Time
}

// AccountPatch is the generic update payload. OwnerID and BelovedOnes are
// accepted on the wire only so they can be rejected.
type AccountPatch struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	OwnerID     *string   `json:"owner_user,omitempty"`
	BelovedOnes *[]string `json:"beloved_ones,omitempty"`
}

// TouchesProtectedFields reports whether the patch tries to change the
// owner or the beloved-ones set.
func (p *AccountPatch) TouchesProtectedFields() bool {
	return p.OwnerID != nil || p.BelovedOnes != nil
}

// AccountsForUser splits the accounts visible to a user by relationship.
type AccountsForUser struct {
	Owned   []*Account
	Beloved []*Account
}
