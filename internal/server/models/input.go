package models

// Creation payloads. Patches for existing resources live next to their entity.

type NewUser struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

type NewAccount struct {
	Name string `json:"name" validate:"required,max=255"`
}

type NewCharacter struct {
	AccountID    string       `json:"account" validate:"required"`
	Name         string       `json:"name" validate:"required,max=255"`
	Relationship Relationship `json:"relationship,omitempty" validate:"omitempty,oneof=family friend other"`
	PhoneNumber  string       `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Email        string       `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Picture      string       `json:"picture,omitempty" validate:"omitempty,max=255"`
}

type NewMemory struct {
	AccountID string `json:"account" validate:"required"`
	Title     string `json:"title" validate:"required,max=255"`
}

type NewVideo struct {
	MemoryID    string `json:"memory" validate:"required"`
	Filename    string `json:"filename" validate:"required,max=255"`
	ContentType string `json:"content_type,omitempty" validate:"omitempty,max=100"`
}
