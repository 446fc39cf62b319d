package postgres

import (
	"context"
	"database/sql"
	"errors"
	"roomgate/internal/config"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func TestConversationRepo_ValidateConversationMembership(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{name: "member", exists: true},
		{name: "stranger", exists: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectQuery(`SELECT EXISTS \(\s+SELECT 1 FROM friendships`).
				WithArgs(int64(42), "u1").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			ok, err := NewConversationRepo(db).ValidateConversationMembership(context.Background(), "u1", 42)

			require.NoError(t, err)
			require.Equal(t, tt.exists, ok)
		})
	}

	t.Run("should surface query errors", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`FROM friendships`).WillReturnError(errors.New("connection reset"))

		_, err := NewConversationRepo(db).ValidateConversationMembership(context.Background(), "u1", 42)

		require.Error(t, err)
	})
}

func TestGroupRepo_ValidateCentralizedGroupOwnership(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`FROM centralized_group_members`).
		WithArgs("solana-monkeys", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := NewGroupRepo(db).ValidateCentralizedGroupOwnership(context.Background(), "u1", "solana-monkeys")

	require.NoError(t, err)
	require.True(t, ok)
}

func TestCollectionRepo(t *testing.T) {
	t.Run("should validate ownership of one collection", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`FROM user_nfts\s+WHERE user_id = \$1 AND collection_id = \$2`).
			WithArgs("u1", "abc").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		ok, err := NewCollectionRepo(db).ValidateCollectionOwnership(context.Background(), "u1", "abc")

		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("should list distinct owned collections", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`SELECT DISTINCT collection_id`).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"collection_id"}).AddRow("abc").AddRow("xyz"))

		ids, err := NewCollectionRepo(db).ListOwnedCollections(context.Background(), "u1")

		require.NoError(t, err)
		require.Equal(t, []string{"abc", "xyz"}, ids)
	})

	t.Run("should surface row scan errors", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`SELECT DISTINCT collection_id`).
			WillReturnRows(sqlmock.NewRows([]string{"collection_id"}).AddRow("abc").RowError(0, errors.New("bad row")))

		_, err := NewCollectionRepo(db).ListOwnedCollections(context.Background(), "u1")

		require.Error(t, err)
	})
}

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New(context.Background(), config.PostgresConfig{DSN: "postgres://user@localhost:notaport/db"})

	require.ErrorContains(t, err, "postgres: parse dsn")
}
