package usecases

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ForumLoop/models"
	"github.com/ForumLoop/repositories"
)

var ErrGetThreadMissingProperty = errors.New("GET_THREAD_USE_CASE.NOT_CONTAIN_NEEDED_PROPERTY")

// GetThreadUseCase assembles the full thread detail. The thread header,
// comments and replies are independent fetches, so they run concurrently;
// aggregation happens in memory once all three are in.
type GetThreadUseCase struct {
	threads  repositories.ThreadRepository
	comments repositories.CommentRepository
	replies  repositories.ReplyRepository
}

func NewGetThreadUseCase(threads repositories.ThreadRepository, comments repositories.CommentRepository, replies repositories.ReplyRepository) *GetThreadUseCase {
	return &GetThreadUseCase{threads: threads, comments: comments, replies: replies}
}

func (uc *GetThreadUseCase) Execute(ctx context.Context, threadID string) (models.ThreadDetail, error) {
	if threadID == "" {
		return models.ThreadDetail{}, ErrGetThreadMissingProperty
	}

	var (
		thread   models.Thread
		comments []models.Comment
		replies  []models.Reply
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		thread, err = uc.threads.GetThread(groupCtx, threadID)
		return err
	})
	group.Go(func() error {
		var err error
		comments, err = uc.comments.GetCommentsByThreadID(groupCtx, threadID)
		return err
	})
	group.Go(func() error {
		var err error
		replies, err = uc.replies.GetRepliesByThreadID(groupCtx, threadID)
		return err
	})
	if err := group.Wait(); err != nil {
		return models.ThreadDetail{}, err
	}

	details, err := models.NewCommentsDetail(comments, replies)
	if err != nil {
		return models.ThreadDetail{}, err
	}
	return models.NewThreadDetail(thread, details)
}
