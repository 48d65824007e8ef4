package proto

import (
	"time"

	"github.com/griotme/griot/internal/server/models"
)

type Empty struct{}

type PingResponse struct {
	Status string `json:"status"`
}

// Requests that carry a creation payload reuse the validated input structs.
type (
	CreateUserRequest      = models.NewUser
	CreateAccountRequest   = models.NewAccount
	CreateCharacterRequest = models.NewCharacter
	CreateMemoryRequest    = models.NewMemory
	CreateVideoRequest     = models.NewVideo
)

type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type ConfirmPasswordResetRequest struct {
	UserID      string `json:"uid"`
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// IDRequest addresses a single resource.
type IDRequest struct {
	ID string `json:"id"`
}

type UpdateProfileRequest struct {
	UserID string `json:"user_id"`
	models.ProfilePatch
}

type UpdateAccountRequest struct {
	ID string `json:"id"`
	models.AccountPatch
}

type BelovedOneRequest struct {
	AccountID string `json:"account_id"`
	UserID    string `json:"user_id"`
}

type UpdateCharacterRequest struct {
	ID string `json:"id"`
	models.CharacterPatch
}

type UpdateMemoryRequest struct {
	ID string `json:"id"`
	models.MemoryPatch
}

type MemoryCharacterRequest struct {
	MemoryID    string `json:"memory_id"`
	CharacterID string `json:"character_id"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Profile struct {
	UserID     string `json:"user"`
	Name       string `json:"name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	BirthDate  string `json:"birth_date,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Language   string `json:"language"`
	Timezone   string `json:"timezone"`
	Picture    string `json:"picture,omitempty"`
}

type ProfileList struct {
	Profiles []*Profile `json:"profiles"`
}

type Account struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_user"`
	Name        string    `json:"name"`
	BelovedOnes []string  `json:"beloved_ones"`
	CreatedAt   time.Time `json:"created_at"`
}

type AccountList struct {
	Owned   []*Account `json:"owned_accounts"`
	Beloved []*Account `json:"beloved_accounts"`
}

type Character struct {
	ID           string `json:"id"`
	AccountID    string `json:"account"`
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Email        string `json:"email,omitempty"`
	Picture      string `json:"picture,omitempty"`
}

type Video struct {
	ID          string `json:"id"`
	MemoryID    string `json:"memory"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	URL         string `json:"url,omitempty"`
	UploadURL   string `json:"upload_url,omitempty"`
}

type Memory struct {
	ID         string       `json:"id"`
	AccountID  string       `json:"account"`
	Title      string       `json:"title"`
	Characters []*Character `json:"characters"`
	Videos     []*Video     `json:"videos"`
	CreatedAt  time.Time    `json:"created_at"`
}

type MemoryList struct {
	Memories []*Memory `json:"memories"`
}
