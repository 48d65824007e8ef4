package models

import "time"

type Relationship string

const (
	RelationshipFamily Relationship = "family"
	RelationshipFriend Relationship = "friend"
	RelationshipOther  Relationship = "other"
)

// Character is a person who appears in memories of one account.
type Character struct {
	ID           string
	AccountID    string
	Name         string
	Relationship Relationship
	PhoneNumber  string
	Email        string
	Picture      string
	IsActive     bool
	CreatedAt    time.Time
}

type CharacterPatch struct {
	Name         *string       `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Relationship *Relationship `json:"relationship,omitempty" validate:"omitempty,oneof=family friend other"`
	PhoneNumber  *string       `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Email        *string       `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Picture      *string       `json:"picture,omitempty" validate:"omitempty,max=255"`
}

func (cp *CharacterPatch) Apply(c *Character) {
	if cp.Name != nil {
		c.Name = *cp.Name
	}
	if cp.Relationship != nil {
		c.Relationship = *cp.Relationship
	}
	if cp.PhoneNumber != nil {
		c.PhoneNumber = *cp.PhoneNumber
	}
	if cp.Email != nil {
		c.Email = *cp.Email
	}
	if cp.Picture != nil {
		c.Picture = *cp.Picture
	}
}
