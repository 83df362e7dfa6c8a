package usecases

import (
	"context"

	"github.com/ForumLoop/models"
	"github.com/ForumLoop/repositories"
)

// LikeDislikeCommentUseCase toggles a user's like on a comment: liked
// becomes unliked and vice versa, based on the state read just before the
// write. The storage layer's unique constraint and conflict-tolerant
// statements absorb racing toggles.
type LikeDislikeCommentUseCase struct {
	comments repositories.CommentRepository
	likes    repositories.CommentLikeRepository
}

func NewLikeDislikeCommentUseCase(comments repositories.CommentRepository, likes repositories.CommentLikeRepository) *LikeDislikeCommentUseCase {
	return &LikeDislikeCommentUseCase{comments: comments, likes: likes}
}

func (uc *LikeDislikeCommentUseCase) Execute(ctx context.Context, comment, user, thread string) error {
	like, err := models.NewCommentLike(comment, user, thread)
	if err != nil {
		return err
	}
	if err := uc.comments.CheckComment(ctx, like.Comment, like.Thread); err != nil {
		return err
	}

	liked, err := uc.likes.IsCommentLiked(ctx, like.Comment, like.User)
	if err != nil {
		return err
	}
	if liked {
		return uc.likes.DislikeComment(ctx, like.Comment, like.User)
	}
	return uc.likes.LikeComment(ctx, like.Comment, like.User)
}
