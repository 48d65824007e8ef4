package videos

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	videoID  = "9f8e7d6c-5b4a-4c3d-8e2f-1a0b9c8d7e6f"
	memoryID = "2a3b4c5d-6e7f-4a8b-9c0d-1e2f3a4b5c6d"
)

var videoCols = []string{"id", "memory_id", "file_key", "filename", "content_type", "is_active", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+videos\s*\(memory_id,\s*file_key,\s*filename,\s*content_type\)`).
		WithArgs(memoryID, "videos/abc", "beach.mp4", "video/mp4").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active", "created_at"}).AddRow(videoID, true, time.Now()))

	v, err := repo.Create(context.Background(), &models.Video{
		MemoryID:    memoryID,
		FileKey:     "videos/abc",
		Filename:    "beach.mp4",
		ContentType: "video/mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, videoID, v.ID)
	assert.True(t, v.IsActive)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT\s+INTO\s+videos`).WillReturnError(errors.New("fk violation"))

	_, err := repo.Create(context.Background(), &models.Video{MemoryID: memoryID, FileKey: "k"})
	assert.ErrorContains(t, err, "db error: fk violation")
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)SELECT\s+id,\s*memory_id,\s*file_key.*FROM\s+videos\s+WHERE\s+id\s*=\s*\$1`
	mock.ExpectQuery(q).WithArgs(videoID).
		WillReturnRows(sqlmock.NewRows(videoCols).AddRow(videoID, memoryID, "videos/abc", "beach.mp4", "video/mp4", true, time.Now()))
	mock.ExpectQuery(q).WithArgs(videoID).WillReturnError(sql.ErrNoRows)

	v, err := repo.GetByID(context.Background(), videoID)
	require.NoError(t, err)
	assert.Equal(t, "videos/abc", v.FileKey)

	_, err = repo.GetByID(context.Background(), videoID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeactivate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)UPDATE\s+videos\s+SET\s+is_active\s*=\s*FALSE`).
		WithArgs(videoID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Deactivate(context.Background(), videoID), common.ErrorNotFound)
}

func TestListByMemory(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)FROM\s+videos\s+WHERE\s+memory_id\s*=\s*\$1\s+AND\s+is_active`).
		WithArgs(memoryID).
		WillReturnRows(sqlmock.NewRows(videoCols).
			AddRow(videoID, memoryID, "videos/abc", "beach.mp4", "video/mp4", true, time.Now()))

	list, err := repo.ListByMemory(context.Background(), memoryID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
