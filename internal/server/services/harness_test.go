package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/griotme/griot/internal/logging"
	"github.com/griotme/griot/internal/server/config"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/repositories/memory"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
	"github.com/griotme/griot/internal/server/storage"
	"github.com/griotme/griot/internal/server/validate"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const password = "Str0ng!pwd"

type resetMail struct {
	user  *models.User
	token string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []resetMail
	err  error
}

func (n *recordingNotifier) PasswordReset(_ context.Context, u *models.User, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, resetMail{user: u, token: token})
	return n.err
}

func (n *recordingNotifier) last() resetMail {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[len(n.sent)-1]
}

type harness struct {
	repos    repomanager.RepositoryManager
	blobs    *storage.MemoryStore
	notifier *recordingNotifier

	users      *UserService
	profiles   *ProfileService
	accounts   *AccountService
	characters *CharacterService
	memories   *MemoryService
	videos     *VideoService
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                  "k",
		ResetTokenValidityDuration: time.Hour,
		BcryptCost:                 bcrypt.MinCost,
	}
}

func newHarnessWith(t *testing.T, m repomanager.RepositoryManager) *harness {
	t.Helper()
	v := validate.New(validate.DefaultMinPasswordLen)
	blobs := storage.NewMemoryStore("griot")
	n := &recordingNotifier{}
	l := logging.Nop{}

	return &harness{
		repos:      m,
		blobs:      blobs,
		notifier:   n,
		users:      NewUserService(m, v, n, testConfig(), l),
		profiles:   NewProfileService(m, v, l),
		accounts:   NewAccountService(m, v, l),
		characters: NewCharacterService(m, v, l),
		memories:   NewMemoryService(m, v, blobs, l),
		videos:     NewVideoService(m, v, blobs, l),
	}
}

func newHarness(t *testing.T) *harness {
	return newHarnessWith(t, memory.NewRepositoryManager())
}

func (h *harness) register(t *testing.T, username string) *models.User {
	t.Helper()
	u, err := h.users.Create(context.Background(), &models.NewUser{
		Username: username,
		Email:    username + "@x.com",
		Password: password,
	})
	require.NoError(t, err)
	return u
}

// family sets up alice owning "Family" with bob as beloved one and carol
// unrelated.
type family struct {
	alice, bob, carol *models.User
	account           *models.Account
}

func (h *harness) family(t *testing.T) *family {
	t.Helper()
	ctx := context.Background()
	f := &family{
		alice: h.register(t, "alice"),
		bob:   h.register(t, "bob"),
		carol: h.register(t, "carol"),
	}

	a, err := h.accounts.Create(ctx, f.alice.ID, &models.NewAccount{Name: "Family"})
	require.NoError(t, err)
	_, err = h.accounts.AddBelovedOne(ctx, f.alice.ID, a.ID, f.bob.ID)
	require.NoError(t, err)
	f.account = a
	return f
}

func (h *harness) memory(t *testing.T, f *family, title string) *models.Memory {
	t.Helper()
	d, err := h.memories.Create(context.Background(), f.alice.ID, &models.NewMemory{AccountID: f.account.ID, Title: title})
	require.NoError(t, err)
	return d.Memory
}

func (h *harness) character(t *testing.T, f *family, name string) *models.Character {
	t.Helper()
	c, err := h.characters.Create(context.Background(), f.alice.ID, &models.NewCharacter{AccountID: f.account.ID, Name: name})
	require.NoError(t, err)
	return c
}
