// Package memory keeps every repository in process memory. It backs the
// "memory" storage driver and the service tests.
//
// Transactions are emulated: WithTx takes the store exclusively, snapshots
// the state and restores the snapshot if fn fails or panics.
package memory

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/repositories/accounts"
	"github.com/griotme/griot/internal/server/repositories/characters"
	"github.com/griotme/griot/internal/server/repositories/memories"
	"github.com/griotme/griot/internal/server/repositories/profiles"
	"github.com/griotme/griot/internal/server/repositories/tokens"
	"github.com/griotme/griot/internal/server/repositories/users"
	"github.com/griotme/griot/internal/server/repositories/videos"
)

var errNoSQL = errors.New("memory store does not execute SQL")

type set map[string]struct{}

type state struct {
	seq uint64
	// order records creation sequence so lists are stable.
	order map[string]uint64

	users      map[string]*models.User
	profiles   map[string]*models.Profile
	tokens     map[string]*models.Token
	accounts   map[string]*models.Account
	beloved    map[string]set
	characters map[string]*models.Character
	memories   map[string]*models.Memory
	links      map[string]set
	videos     map[string]*models.Video
}

func newState() *state {
	return &state{
		order:      map[string]uint64{},
		users:      map[string]*models.User{},
		profiles:   map[string]*models.Profile{},
		tokens:     map[string]*models.Token{},
		accounts:   map[string]*models.Account{},
		beloved:    map[string]set{},
		characters: map[string]*models.Character{},
		memories:   map[string]*models.Memory{},
		links:      map[string]set{},
		videos:     map[string]*models.Video{},
	}
}

func cloneMap[T any](m map[string]*T) map[string]*T {
	out := make(map[string]*T, len(m))
	for k, v := range m {
		c := *v
		out[k] = &c
	}
	return out
}

func cloneSets(m map[string]set) map[string]set {
	out := make(map[string]set, len(m))
	for k, v := range m {
		s := make(set, len(v))
		for id := range v {
			s[id] = struct{}{}
		}
		out[k] = s
	}
	return out
}

func (s *state) clone() *state {
	order := make(map[string]uint64, len(s.order))
	for k, v := range s.order {
		order[k] = v
	}
	return &state{
		seq:        s.seq,
		order:      order,
		users:      cloneMap(s.users),
		profiles:   cloneMap(s.profiles),
		tokens:     cloneMap(s.tokens),
		accounts:   cloneMap(s.accounts),
		beloved:    cloneSets(s.beloved),
		characters: cloneMap(s.characters),
		memories:   cloneMap(s.memories),
		links:      cloneSets(s.links),
		videos:     cloneMap(s.videos),
	}
}

// newID allocates a uuid and records its creation order.
func (s *state) newID() string {
	id := uuid.NewString()
	s.seq++
	s.order[id] = s.seq
	return id
}

// handle satisfies dbx.DBTX so memory repositories can be bound the same
// way Postgres ones are. It never runs SQL.
type handle struct {
	inTx bool
}

func (handle) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errNoSQL
}

func (handle) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errNoSQL
}

func (handle) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

// RepositoryManager is the in-memory counterpart of
// repomanager.PostgresRepositoryManager.
type RepositoryManager struct {
	// txMu is held exclusively by WithTx and shared by standalone calls.
	txMu sync.RWMutex
	mu   sync.RWMutex
	data *state

	now func() time.Time
}

func NewRepositoryManager() *RepositoryManager {
	return &RepositoryManager{data: newState(), now: time.Now}
}

func (m *RepositoryManager) Handle() dbx.DBTX { return handle{} }

func (m *RepositoryManager) WithTx(ctx context.Context, fn dbx.TxFunc) (err error) {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.RLock()
	snapshot := m.data.clone()
	m.mu.RUnlock()

	defer func() {
		if p := recover(); p != nil {
			m.restore(snapshot)
			panic(p)
		}
		if err != nil {
			m.restore(snapshot)
		}
	}()

	return fn(ctx, handle{inTx: true})
}

func (m *RepositoryManager) restore(s *state) {
	m.mu.Lock()
	m.data = s
	m.mu.Unlock()
}

func inTx(db dbx.DBTX) bool {
	h, ok := db.(handle)
	return ok && h.inTx
}

// read and write lock the store for one repository call made through db.
func (m *RepositoryManager) read(db dbx.DBTX) func() {
	tx := inTx(db)
	if !tx {
		m.txMu.RLock()
	}
	m.mu.RLock()
	return func() {
		m.mu.RUnlock()
		if !tx {
			m.txMu.RUnlock()
		}
	}
}

func (m *RepositoryManager) write(db dbx.DBTX) func() {
	tx := inTx(db)
	if !tx {
		m.txMu.RLock()
	}
	m.mu.Lock()
	return func() {
		m.mu.Unlock()
		if !tx {
			m.txMu.RUnlock()
		}
	}
}

func (m *RepositoryManager) Users(db dbx.DBTX) users.Repository {
	return &usersRepo{m: m, db: db}
}

func (m *RepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return &profilesRepo{m: m, db: db}
}

func (m *RepositoryManager) Tokens(db dbx.DBTX) tokens.Repository {
	return &tokensRepo{m: m, db: db}
}

func (m *RepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return &accountsRepo{m: m, db: db}
}

func (m *RepositoryManager) Characters(db dbx.DBTX) characters.Repository {
	return &charactersRepo{m: m, db: db}
}

func (m *RepositoryManager) Memories(db dbx.DBTX) memories.Repository {
	return &memoriesRepo{m: m, db: db}
}

func (m *RepositoryManager) Videos(db dbx.DBTX) videos.Repository {
	return &videosRepo{m: m, db: db}
}

// sortByOrder sorts ids by creation sequence.
func (s *state) sortByOrder(ids []string) {
	slices.SortFunc(ids, func(a, b string) int {
		return cmp.Compare(s.order[a], s.order[b])
	})
}
