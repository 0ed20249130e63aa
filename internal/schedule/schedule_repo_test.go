package schedule

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormRepo(t *testing.T) (Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return NewRepository(gormDB), db, mock
}

func TestRepositoryWithTx(t *testing.T) {
	t.Run("tulis gorm berjalan di koneksi transaksi yang sama", func(t *testing.T) {
		repo, db, mock := newGormRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "schedules" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)

		qtx := repo.WithTx(tx)
		require.NoError(t, qtx.UpdateStatus(context.Background(), uuid.NewString(), StatusCompleted))
		require.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback ikut membatalkan tulis domain", func(t *testing.T) {
		repo, db, mock := newGormRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "schedules" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		tx, err := db.Begin()
		require.NoError(t, err)

		qtx := repo.WithTx(tx)
		require.NoError(t, qtx.UpdateStatus(context.Background(), uuid.NewString(), StatusCancelled))
		require.NoError(t, tx.Rollback())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repository asal tetap memakai pool", func(t *testing.T) {
		repo, db, mock := newGormRepo(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		tx, err := db.Begin()
		require.NoError(t, err)

		bound, ok := repo.WithTx(tx).(*repository)
		require.True(t, ok)
		assert.Same(t, tx, bound.db.Statement.ConnPool)

		base, ok := repo.(*repository)
		require.True(t, ok)
		assert.NotSame(t, tx, base.db.Statement.ConnPool)

		require.NoError(t, tx.Rollback())
	})
}
