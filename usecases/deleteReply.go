package usecases

import (
	"context"

	"github.com/ForumLoop/repositories"
)

// DeleteReplyUseCase soft-deletes a reply, with the same existence-before-
// ownership ordering as comment deletion.
type DeleteReplyUseCase struct {
	replies repositories.ReplyRepository
}

func NewDeleteReplyUseCase(replies repositories.ReplyRepository) *DeleteReplyUseCase {
	return &DeleteReplyUseCase{replies: replies}
}

func (uc *DeleteReplyUseCase) Execute(ctx context.Context, reply, comment, thread, owner string) error {
	if err := uc.replies.CheckReply(ctx, reply, comment, thread); err != nil {
		return err
	}
	if err := uc.replies.VerifyReplyOwner(ctx, reply, owner); err != nil {
		return err
	}
	return uc.replies.DeleteReply(ctx, reply)
}
