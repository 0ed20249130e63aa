package leave

import (
	"context"
	"database/sql"
	"testing"
	"time"

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
	t.Run("tulis keputusan berjalan di koneksi transaksi yang sama", func(t *testing.T) {
		repo, db, mock := newGormRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "leave_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)

		reviewerID := uuid.New()
		now := time.Now()
		req := &LeaveRequest{
			ID:        uuid.New(),
			Status:    StatusApproved,
			DecidedBy: &reviewerID,
			DecidedAt: &now,
		}

		qtx := repo.WithTx(tx)
		require.NoError(t, qtx.UpdateDecision(context.Background(), req))
		require.NoError(t, tx.Commit())

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
