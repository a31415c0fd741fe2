package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svj-dojo/bellwall-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func groupRows(id, name string, active bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "name", "active", "created_at", "updated_at"}).
		AddRow(id, name, active, now, now)
}

func TestGroupRepositoryFindActive(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewGroupRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, active, created_at, updated_at FROM groups ORDER BY active DESC")).
		WillReturnRows(groupRows("group-1", "Classes", true))

	group, err := repo.FindActive(context.Background())
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, "group-1", group.ID)
	assert.True(t, group.Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepositoryFindActiveNoGroups(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewGroupRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, active, created_at, updated_at FROM groups")).
		WillReturnError(sql.ErrNoRows)

	group, err := repo.FindActive(context.Background())
	require.NoError(t, err)
	assert.Nil(t, group)
}

func TestGroupRepositoryActivate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewGroupRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE groups SET active = FALSE")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE groups SET active = TRUE")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Activate(context.Background(), "group-2"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepositoryActivateUnknownID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewGroupRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE groups SET active = FALSE")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE groups SET active = TRUE")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Activate(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGroupRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewGroupRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO groups")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	group := &models.Group{Name: "Tournament Day"}
	require.NoError(t, repo.Create(context.Background(), group))
	assert.NotEmpty(t, group.ID)
	assert.False(t, group.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewGroupRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM groups")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
