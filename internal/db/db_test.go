package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	t.Run("миграция выполняется одним скриптом", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS plans").WillReturnResult(sqlmock.NewResult(0, 0))

		err = Migrate(context.Background(), db)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка выполнения миграции", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS plans").WillReturnError(errors.New("syntax error"))

		err = Migrate(context.Background(), db)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "000001_init.up.sql")
	})
}
