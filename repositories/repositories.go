package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ForumLoop/apperrors"
	"github.com/ForumLoop/models"
)

// IDGenerator produces the random part of an entity id. Injectable so tests
// can pin ids.
type IDGenerator func() string

// NewID is the production generator.
func NewID() string {
	return uuid.NewString()
}

// nowTimestamp renders creation/update times the way the schema stores them.
func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ThreadRepository persists threads and answers existence checks.
type ThreadRepository interface {
	AddThread(ctx context.Context, thread models.AddThread) (models.AddedThread, error)
	GetThread(ctx context.Context, threadID string) (models.Thread, error)
	CheckThread(ctx context.Context, threadID string) error
}

// CommentRepository persists comments. CheckComment is scoped to the thread
// so a comment id cannot be reached through another thread's URL.
type CommentRepository interface {
	AddComment(ctx context.Context, comment models.AddComment) (models.AddedComment, error)
	CheckComment(ctx context.Context, commentID, threadID string) error
	VerifyCommentOwner(ctx context.Context, commentID, ownerID string) error
	DeleteComment(ctx context.Context, commentID string) error
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]models.Comment, error)
}

// ReplyRepository mirrors CommentRepository for replies. CheckReply is scoped
// to both the comment and the thread.
type ReplyRepository interface {
	AddReply(ctx context.Context, reply models.AddReply) (models.AddedReply, error)
	CheckReply(ctx context.Context, replyID, commentID, threadID string) error
	VerifyReplyOwner(ctx context.Context, replyID, ownerID string) error
	DeleteReply(ctx context.Context, replyID string) error
	GetRepliesByThreadID(ctx context.Context, threadID string) ([]models.Reply, error)
}

// CommentLikeRepository persists the (comment, user) like relation. Likes are
// hard rows: present means liked, absent means not liked.
type CommentLikeRepository interface {
	IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error)
	LikeComment(ctx context.Context, commentID, userID string) error
	DislikeComment(ctx context.Context, commentID, userID string) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	AddUser(ctx context.Context, user models.RegisterUser) (models.RegisteredUser, error)
	VerifyAvailableUsername(ctx context.Context, username string) error
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, userID string) (models.User, error)
}

// AuthenticationRepository stores issued refresh tokens.
type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	CheckToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

// The Unimplemented* types can be embedded by partial implementations (test
// doubles mostly) to satisfy an interface while loudly failing on anything
// not overridden. Interface completeness for real implementations is still
// enforced at compile time.

type UnimplementedThreadRepository struct{}

func (UnimplementedThreadRepository) AddThread(context.Context, models.AddThread) (models.AddedThread, error) {
	return models.AddedThread{}, apperrors.ErrMethodNotImplemented
}

func (UnimplementedThreadRepository) GetThread(context.Context, string) (models.Thread, error) {
	return models.Thread{}, apperrors.ErrMethodNotImplemented
}

func (UnimplementedThreadRepository) CheckThread(context.Context, string) error {
	return apperrors.ErrMethodNotImplemented
}

type UnimplementedCommentRepository struct{}

func (UnimplementedCommentRepository) AddComment(context.Context, models.AddComment) (models.AddedComment, error) {
	return models.AddedComment{}, apperrors.ErrMethodNotImplemented
}

func (UnimplementedCommentRepository) CheckComment(context.Context, string, string) error {
	return apperrors.ErrMethodNotImplemented
}

func (UnimplementedCommentRepository) VerifyCommentOwner(context.Context, string, string) error {
	return apperrors.ErrMethodNotImplemented
}

func (UnimplementedCommentRepository) DeleteComment(context.Context, string) error {
	return apperrors.ErrMethodNotImplemented
}

func (UnimplementedCommentRepository) GetCommentsByThreadID(context.Context, string) ([]models.Comment, error) {
	return nil, apperrors.ErrMethodNotImplemented
}

type UnimplementedReplyRepository struct{}

func (UnimplementedReplyRepository) AddReply(context.Context, models.AddReply) (models.AddedReply, error) {
	return models.AddedReply{}, apperrors.ErrMethodNotImplemented
}

func (UnimplementedReplyRepository) CheckReply(context.Context, string, string, string) error {
	return apperrors.ErrMethodNotImplemented
}

func (UnimplementedReplyRepository) VerifyReplyOwner(context.Context, string, string) error {
	return apperrors.ErrMethodNotImplemented
}

func (UnimplementedReplyRepository) DeleteReply(context.Context, string) error {
	return apperrors.ErrMethodNotImplemented
}

func (UnimplementedReplyRepository) GetRepliesByThreadID(context.Context, string) ([]models.Reply, error) {
	return nil, apperrors.ErrMethodNotImplemented
}

type UnimplementedCommentLikeRepository struct{}

func (UnimplementedCommentLikeRepository) IsCommentLiked(context.Context, string, string) (bool, error) {
	return false, apperrors.ErrMethodNotImplemented
}

func (UnimplementedCommentLikeRepository) LikeComment(context.Context, string, string) error {
	return apperrors.ErrMethodNotImplemented
}

func (UnimplementedCommentLikeRepository) DislikeComment(context.Context, string, string) error {
	return apperrors.ErrMethodNotImplemented
}
