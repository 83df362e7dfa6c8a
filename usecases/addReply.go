package usecases

import (
	"context"

	"github.com/ForumLoop/models"
	"github.com/ForumLoop/repositories"
)

// AddReplyUseCase validates the payload, confirms the parent comment exists
// under the claimed thread, then persists the reply.
type AddReplyUseCase struct {
	comments repositories.CommentRepository
	replies  repositories.ReplyRepository
}

func NewAddReplyUseCase(comments repositories.CommentRepository, replies repositories.ReplyRepository) *AddReplyUseCase {
	return &AddReplyUseCase{comments: comments, replies: replies}
}

func (uc *AddReplyUseCase) Execute(ctx context.Context, content, thread, comment, owner string) (models.AddedReply, error) {
	reply, err := models.NewAddReply(content, thread, comment, owner)
	if err != nil {
		return models.AddedReply{}, err
	}
	if err := uc.comments.CheckComment(ctx, reply.Comment, reply.Thread); err != nil {
		return models.AddedReply{}, err
	}
	return uc.replies.AddReply(ctx, reply)
}
