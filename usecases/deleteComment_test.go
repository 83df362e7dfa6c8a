package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ForumLoop/apperrors"
)

func TestDeleteCommentUseCase(t *testing.T) {
	t.Run("reports not found before the ownership check runs", func(t *testing.T) {
		comments := new(MockCommentRepository)
		notFound := apperrors.NewNotFoundError("comment not found")
		comments.On("CheckComment", mock.Anything, "comment-999", "thread-123").Return(notFound)

		uc := NewDeleteCommentUseCase(comments)
		err := uc.Execute(context.Background(), "comment-999", "thread-123", "user-123")

		assert.ErrorIs(t, err, notFound)
		comments.AssertNotCalled(t, "VerifyCommentOwner", mock.Anything, mock.Anything, mock.Anything)
		comments.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
	})

	t.Run("reports forbidden for a non-owner of an existing comment", func(t *testing.T) {
		comments := new(MockCommentRepository)
		forbidden := apperrors.NewAuthorizationError("you are not allowed to access this resource")
		comments.On("CheckComment", mock.Anything, "comment-123", "thread-123").Return(nil)
		comments.On("VerifyCommentOwner", mock.Anything, "comment-123", "user-456").Return(forbidden)

		uc := NewDeleteCommentUseCase(comments)
		err := uc.Execute(context.Background(), "comment-123", "thread-123", "user-456")

		assert.ErrorIs(t, err, forbidden)
		clientErr, ok := apperrors.AsClientError(err)
		assert.True(t, ok)
		assert.Equal(t, 403, clientErr.Status)
		comments.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
	})

	t.Run("soft-deletes when existence and ownership pass", func(t *testing.T) {
		comments := new(MockCommentRepository)
		comments.On("CheckComment", mock.Anything, "comment-123", "thread-123").Return(nil)
		comments.On("VerifyCommentOwner", mock.Anything, "comment-123", "user-123").Return(nil)
		comments.On("DeleteComment", mock.Anything, "comment-123").Return(nil)

		uc := NewDeleteCommentUseCase(comments)
		err := uc.Execute(context.Background(), "comment-123", "thread-123", "user-123")

		assert.NoError(t, err)
		comments.AssertExpectations(t)
	})

	t.Run("deleting an already-deleted comment still succeeds", func(t *testing.T) {
		// the soft-delete UPDATE is idempotent; the existence check passes
		// because the row is still there
		comments := new(MockCommentRepository)
		comments.On("CheckComment", mock.Anything, "comment-123", "thread-123").Return(nil)
		comments.On("VerifyCommentOwner", mock.Anything, "comment-123", "user-123").Return(nil)
		comments.On("DeleteComment", mock.Anything, "comment-123").Return(nil)

		uc := NewDeleteCommentUseCase(comments)

		assert.NoError(t, uc.Execute(context.Background(), "comment-123", "thread-123", "user-123"))
		assert.NoError(t, uc.Execute(context.Background(), "comment-123", "thread-123", "user-123"))
		comments.AssertNumberOfCalls(t, "DeleteComment", 2)
	})
}
