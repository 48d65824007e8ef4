// Package models holds the entities persisted by griot and the patch
// structs used to update them.
package models

// Kind names a resource type for permission checks and soft deletes.
type Kind string

const (
	KindAccount   Kind = "account"
	KindCharacter Kind = "character"
	KindMemory    Kind = "memory"
	KindVideo     Kind = "video"
	KindProfile   Kind = "profile"
)
