package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/ForumLoop/apperrors"
	"github.com/ForumLoop/models"
)

func TestUserRepositoryAddUser(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "username", "fullname"}).
		AddRow("user-123", "dicoding", "Dicoding Indonesia")
	mock.ExpectQuery("INSERT INTO \"users\"").WillReturnRows(rows)

	repo := NewUserRepositoryPostgres(db, fixedID)
	registered, err := repo.AddUser(context.Background(), models.RegisterUser{
		Username: "dicoding",
		Password: "hashed",
		Fullname: "Dicoding Indonesia",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RegisteredUser{ID: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, registered)
}

func TestUserRepositoryVerifyAvailableUsername(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		repo := NewUserRepositoryPostgres(db, fixedID)

		assert.NoError(t, repo.VerifyAvailableUsername(context.Background(), "dicoding"))
	})

	t.Run("taken", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		repo := NewUserRepositoryPostgres(db, fixedID)
		err := repo.VerifyAvailableUsername(context.Background(), "dicoding")

		clientErr, ok := apperrors.AsClientError(err)
		assert.True(t, ok)
		assert.Equal(t, 400, clientErr.Status)
	})
}

func TestUserRepositoryGetUserByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "username", "password", "fullname", "created_at", "updated_at"}).
			AddRow("user-123", "dicoding", "hashed", "Dicoding Indonesia", "2023", "2023")
		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		repo := NewUserRepositoryPostgres(db, fixedID)
		user, err := repo.GetUserByUsername(context.Background(), "dicoding")

		assert.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, "hashed", user.Password)
	})

	t.Run("unknown username reads as bad credentials", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "fullname", "created_at", "updated_at"}))

		repo := NewUserRepositoryPostgres(db, fixedID)
		_, err := repo.GetUserByUsername(context.Background(), "nobody")

		clientErr, ok := apperrors.AsClientError(err)
		assert.True(t, ok)
		assert.Equal(t, 401, clientErr.Status)
	})
}

func TestUserRepositoryGetUserByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "fullname", "created_at", "updated_at"}))

	repo := NewUserRepositoryPostgres(db, fixedID)
	_, err := repo.GetUserByID(context.Background(), "user-999")

	clientErr, ok := apperrors.AsClientError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, clientErr.Status)
}
