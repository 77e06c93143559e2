package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(sqlx.NewDb(db, "mysql")), m
}

func TestCreate(t *testing.T) {
	t.Run("assigns the new id", func(t *testing.T) {
		repo, m := newRepo(t)
		m.ExpectExec(regexp.QuoteMeta(insertUserQuery)).
			WithArgs("LOGISTICS01", "Ops", "ops@example.com", "0876", "hash").
			WillReturnResult(sqlmock.NewResult(7, 1))

		got, err := repo.Create(context.Background(), &model.UserEntity{
			UserName: "LOGISTICS01", Name: "Ops", Email: "ops@example.com", Phone: "0876", PasswordHash: "hash",
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(7), got.ID)
		assert.NoError(t, m.ExpectationsWereMet())
	})

	t.Run("duplicate key", func(t *testing.T) {
		repo, m := newRepo(t)
		m.ExpectExec(regexp.QuoteMeta(insertUserQuery)).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'LOGISTICS01' for key 'uk_user_user_name'"})

		_, err := repo.Create(context.Background(), &model.UserEntity{UserName: "LOGISTICS01"})
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})
}

func TestGet(t *testing.T) {
	cols := []string{"id", "user_name", "name", "email", "phone", "password_hash", "created_at", "updated_at"}

	t.Run("by user name", func(t *testing.T) {
		repo, m := newRepo(t)
		m.ExpectQuery(regexp.QuoteMeta(getUserBase + " AND user_name = ?")).
			WithArgs("LOGISTICS01").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(4, "LOGISTICS01", "Ops", "ops@example.com", "0876", "hash", time.Now(), nil))

		got, err := repo.Get(context.Background(), &model.UserFilter{UserName: "LOGISTICS01"})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint64(4), got.ID)
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("no rows", func(t *testing.T) {
		repo, m := newRepo(t)
		m.ExpectQuery(regexp.QuoteMeta(getUserBase + " AND email = ?")).
			WithArgs("none@example.com").
			WillReturnRows(sqlmock.NewRows(cols))

		got, err := repo.Get(context.Background(), &model.UserFilter{Email: "none@example.com"})
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
