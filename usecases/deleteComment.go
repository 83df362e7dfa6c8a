package usecases

import (
	"context"

	"github.com/ForumLoop/repositories"
)

// DeleteCommentUseCase soft-deletes a comment. Existence is checked before
// ownership so a request against a missing comment reports not-found rather
// than forbidden.
type DeleteCommentUseCase struct {
	comments repositories.CommentRepository
}

func NewDeleteCommentUseCase(comments repositories.CommentRepository) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{comments: comments}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, comment, thread, owner string) error {
	if err := uc.comments.CheckComment(ctx, comment, thread); err != nil {
		return err
	}
	if err := uc.comments.VerifyCommentOwner(ctx, comment, owner); err != nil {
		return err
	}
	return uc.comments.DeleteComment(ctx, comment)
}
