package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ForumLoop/models"
)

type MockThreadRepository struct {
	mock.Mock
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread models.AddThread) (models.AddedThread, error) {
	args := m.Called(ctx, thread)
	return args.Get(0).(models.AddedThread), args.Error(1)
}

func (m *MockThreadRepository) GetThread(ctx context.Context, threadID string) (models.Thread, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(models.Thread), args.Error(1)
}

func (m *MockThreadRepository) CheckThread(ctx context.Context, threadID string) error {
	args := m.Called(ctx, threadID)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment models.AddComment) (models.AddedComment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(models.AddedComment), args.Error(1)
}

func (m *MockCommentRepository) CheckComment(ctx context.Context, commentID, threadID string) error {
	args := m.Called(ctx, commentID, threadID)
	return args.Error(0)
}

func (m *MockCommentRepository) VerifyCommentOwner(ctx context.Context, commentID, ownerID string) error {
	args := m.Called(ctx, commentID, ownerID)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]models.Comment, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockReplyRepository struct {
	mock.Mock
}

func (m *MockReplyRepository) AddReply(ctx context.Context, reply models.AddReply) (models.AddedReply, error) {
	args := m.Called(ctx, reply)
	return args.Get(0).(models.AddedReply), args.Error(1)
}

func (m *MockReplyRepository) CheckReply(ctx context.Context, replyID, commentID, threadID string) error {
	args := m.Called(ctx, replyID, commentID, threadID)
	return args.Error(0)
}

func (m *MockReplyRepository) VerifyReplyOwner(ctx context.Context, replyID, ownerID string) error {
	args := m.Called(ctx, replyID, ownerID)
	return args.Error(0)
}

func (m *MockReplyRepository) DeleteReply(ctx context.Context, replyID string) error {
	args := m.Called(ctx, replyID)
	return args.Error(0)
}

func (m *MockReplyRepository) GetRepliesByThreadID(ctx context.Context, threadID string) ([]models.Reply, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).([]models.Reply), args.Error(1)
}

type MockCommentLikeRepository struct {
	mock.Mock
}

func (m *MockCommentLikeRepository) IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentLikeRepository) LikeComment(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockCommentLikeRepository) DislikeComment(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}
