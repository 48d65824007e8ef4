package models

import "time"

// Memory belongs to one account and links any number of its characters.
type Memory struct {
	ID           string
	AccountID    string
	Title        string
	CharacterIDs []string
	IsActive     bool
	CreatedAt    time.Time
}

type MemoryPatch struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
}

// MemoryDetail is a memory with its active characters and videos.
type MemoryDetail struct {
	Memory     *Memory
	Characters []*Character
	Videos     []*VideoLink
}
