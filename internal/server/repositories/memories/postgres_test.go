package memories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	memoryID    = "2a3b4c5d-6e7f-4a8b-9c0d-1e2f3a4b5c6d"
	accountID   = "7d1f8a2e-3b4c-4d5e-8f90-a1b2c3d4e5f6"
	characterID = "5e6f7a8b-9c0d-4e1f-8a2b-3c4d5e6f7a8b"
	userID      = "1c4d63e7-1e66-4c1b-b2b5-0a4f1f7b4a21"
)

var memoryCols = []string{"id", "account_id", "title", "is_active", "created_at"}

const linksQuery = `(?s)SELECT\s+character_id\s+FROM\s+memory_characters\s+WHERE\s+memory_id\s*=\s*\$1`

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+memories\s*\(account_id,\s*title\).*RETURNING\s+id,\s*is_active,\s*created_at`).
		WithArgs(accountID, "Summer 1999").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active", "created_at"}).AddRow(memoryID, true, time.Now()))

	m, err := repo.Create(context.Background(), &models.Memory{AccountID: accountID, Title: "Summer 1999"})
	require.NoError(t, err)
	assert.Equal(t, memoryID, m.ID)
	assert.Empty(t, m.CharacterIDs)
}

func TestGetByID_LoadsCharacterLinks(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*account_id,\s*title,\s*is_active,\s*created_at\s+FROM\s+memories\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(memoryID).
		WillReturnRows(sqlmock.NewRows(memoryCols).AddRow(memoryID, accountID, "Summer 1999", true, time.Now()))
	mock.ExpectQuery(linksQuery).
		WithArgs(memoryID).
		WillReturnRows(sqlmock.NewRows([]string{"character_id"}).AddRow(characterID))

	m, err := repo.GetByID(context.Background(), memoryID)
	require.NoError(t, err)
	assert.Equal(t, []string{characterID}, m.CharacterIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+memories`).WithArgs(memoryID).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), memoryID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeactivate_Twice(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)UPDATE\s+memories\s+SET\s+is_active\s*=\s*FALSE\s+WHERE\s+id\s*=\s*\$1\s+AND\s+is_active`
	mock.ExpectExec(q).WithArgs(memoryID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(memoryID).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Deactivate(context.Background(), memoryID))
	assert.ErrorIs(t, repo.Deactivate(context.Background(), memoryID), common.ErrorNotFound)
}

func TestUpdateTitle(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)UPDATE\s+memories\s+SET\s+title\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s+AND\s+is_active`).
		WithArgs(memoryID, "Winter").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateTitle(context.Background(), memoryID, "Winter"))
}

func TestListForUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)SELECT\s+DISTINCT\s+m\.id.*FROM\s+memories\s+m\s+JOIN\s+accounts\s+a.*LEFT\s+JOIN\s+account_beloved_ones\s+b.*WHERE\s+m\.is_active\s+AND\s+a\.is_active`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(memoryCols).AddRow(memoryID, accountID, "Summer 1999", true, time.Now()))
	mock.ExpectQuery(linksQuery).
		WithArgs(memoryID).
		WillReturnRows(sqlmock.NewRows([]string{"character_id"}))

	list, err := repo.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Summer 1999", list[0].Title)
	assert.Empty(t, list[0].CharacterIDs)
}

func TestCharacterLinks(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+memory_characters.*ON\s+CONFLICT\s+DO\s+NOTHING`).
		WithArgs(memoryID, characterID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`(?s)DELETE\s+FROM\s+memory_characters\s+WHERE\s+memory_id\s*=\s*\$1\s+AND\s+character_id\s*=\s*\$2`).
		WithArgs(memoryID, characterID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.AddCharacter(context.Background(), memoryID, characterID))
	assert.ErrorIs(t, repo.RemoveCharacter(context.Background(), memoryID, characterID), common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
