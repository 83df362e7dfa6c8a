package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/ForumLoop/apperrors"
	"github.com/ForumLoop/models"
)

func TestReplyRepositoryAddReply(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "content", "owner"}).
		AddRow("reply-123", "a reply", "user-123")
	mock.ExpectQuery("INSERT INTO \"replies\"").WillReturnRows(rows)

	repo := NewReplyRepositoryPostgres(db, fixedID)
	added, err := repo.AddReply(context.Background(), models.AddReply{
		Content: "a reply",
		Thread:  "thread-123",
		Comment: "comment-123",
		Owner:   "user-123",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.AddedReply{ID: "reply-123", Content: "a reply", Owner: "user-123"}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepositoryCheckReply(t *testing.T) {
	t.Run("found under comment and thread", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("reply-123"))

		repo := NewReplyRepositoryPostgres(db, fixedID)

		assert.NoError(t, repo.CheckReply(context.Background(), "reply-123", "comment-123", "thread-123"))
	})

	t.Run("scoped lookup misses", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		repo := NewReplyRepositoryPostgres(db, fixedID)
		err := repo.CheckReply(context.Background(), "reply-123", "comment-123", "thread-999")

		clientErr, ok := apperrors.AsClientError(err)
		assert.True(t, ok)
		assert.Equal(t, 404, clientErr.Status)
	})
}

func TestReplyRepositoryVerifyReplyOwner(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewReplyRepositoryPostgres(db, fixedID)
	err := repo.VerifyReplyOwner(context.Background(), "reply-123", "user-456")

	clientErr, ok := apperrors.AsClientError(err)
	assert.True(t, ok)
	assert.Equal(t, 403, clientErr.Status)
}

func TestReplyRepositoryDeleteReply(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectExec("UPDATE \"replies\"").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewReplyRepositoryPostgres(db, fixedID)

	assert.NoError(t, repo.DeleteReply(context.Background(), "reply-123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepositoryGetRepliesByThreadID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "content", "username", "comment", "created_at", "is_deleted"}).
		AddRow("reply-1", "first reply", "johndoe", "comment-123", "2023-01-01T01:00:00Z", false).
		AddRow("reply-2", "second reply", "dicoding", "comment-123", "2023-01-01T02:00:00Z", true)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	repo := NewReplyRepositoryPostgres(db, fixedID)
	replies, err := repo.GetRepliesByThreadID(context.Background(), "thread-123")

	assert.NoError(t, err)
	assert.Len(t, replies, 2)
	assert.Equal(t, "first reply", replies[0].Content)
	assert.Equal(t, "comment-123", replies[0].Comment)
	assert.Equal(t, models.DeletedReplyContent, replies[1].Content)
}
