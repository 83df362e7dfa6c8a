package usecases

import (
	"context"

	"github.com/ForumLoop/models"
	"github.com/ForumLoop/repositories"
)

// AddThreadUseCase validates the payload and persists a new thread.
type AddThreadUseCase struct {
	threads repositories.ThreadRepository
}

func NewAddThreadUseCase(threads repositories.ThreadRepository) *AddThreadUseCase {
	return &AddThreadUseCase{threads: threads}
}

func (uc *AddThreadUseCase) Execute(ctx context.Context, title, body, owner string) (models.AddedThread, error) {
	thread, err := models.NewAddThread(title, body, owner)
	if err != nil {
		return models.AddedThread{}, err
	}
	return uc.threads.AddThread(ctx, thread)
}
