package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ForumLoop/models"
)

func TestAddThreadUseCase(t *testing.T) {
	t.Run("rejects invalid payload before touching the repository", func(t *testing.T) {
		threads := new(MockThreadRepository)
		uc := NewAddThreadUseCase(threads)

		_, err := uc.Execute(context.Background(), "", "thread body", "user-123")

		assert.ErrorIs(t, err, models.ErrAddThreadMissingProperty)
		threads.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything)
	})

	t.Run("persists a valid thread", func(t *testing.T) {
		threads := new(MockThreadRepository)
		expected := models.AddedThread{ID: "thread-123", Title: "a thread", Owner: "user-123"}
		threads.On("AddThread", mock.Anything, models.AddThread{
			Title: "a thread",
			Body:  "thread body",
			Owner: "user-123",
		}).Return(expected, nil)

		uc := NewAddThreadUseCase(threads)
		added, err := uc.Execute(context.Background(), "a thread", "thread body", "user-123")

		assert.NoError(t, err)
		assert.Equal(t, expected, added)
		threads.AssertExpectations(t)
	})
}
