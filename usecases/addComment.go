package usecases

import (
	"context"

	"github.com/ForumLoop/models"
	"github.com/ForumLoop/repositories"
)

// AddCommentUseCase validates the payload, confirms the thread exists, then
// persists the comment. No write happens on a missing thread.
type AddCommentUseCase struct {
	threads  repositories.ThreadRepository
	comments repositories.CommentRepository
}

func NewAddCommentUseCase(threads repositories.ThreadRepository, comments repositories.CommentRepository) *AddCommentUseCase {
	return &AddCommentUseCase{threads: threads, comments: comments}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, content, thread, owner string) (models.AddedComment, error) {
	comment, err := models.NewAddComment(content, thread, owner)
	if err != nil {
		return models.AddedComment{}, err
	}
	if err := uc.threads.CheckThread(ctx, comment.Thread); err != nil {
		return models.AddedComment{}, err
	}
	return uc.comments.AddComment(ctx, comment)
}
