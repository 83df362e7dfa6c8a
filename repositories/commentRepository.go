package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/ForumLoop/apperrors"
	"github.com/ForumLoop/models"
)

type CommentRepositoryPostgres struct {
	db    *goqu.Database
	newID IDGenerator
}

func NewCommentRepositoryPostgres(db *goqu.Database, newID IDGenerator) *CommentRepositoryPostgres {
	return &CommentRepositoryPostgres{db: db, newID: newID}
}

func (r *CommentRepositoryPostgres) AddComment(ctx context.Context, comment models.AddComment) (models.AddedComment, error) {
	now := nowTimestamp()

	insert := r.db.Insert("comments").Rows(goqu.Record{
		"id":         "comment-" + r.newID(),
		"content":    comment.Content,
		"thread":     comment.Thread,
		"owner":      comment.Owner,
		"is_deleted": false,
		"created_at": now,
		"updated_at": now,
	}).Returning("id", "content", "owner")

	var added models.AddedComment
	if _, err := insert.Executor().ScanStructContext(ctx, &added); err != nil {
		return models.AddedComment{}, err
	}
	return added, nil
}

func (r *CommentRepositoryPostgres) CheckComment(ctx context.Context, commentID, threadID string) error {
	var id string
	found, err := r.db.From("comments").
		Select("id").
		Where(goqu.C("id").Eq(commentID), goqu.C("thread").Eq(threadID)).
		ScanValContext(ctx, &id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepositoryPostgres) VerifyCommentOwner(ctx context.Context, commentID, ownerID string) error {
	var id string
	found, err := r.db.From("comments").
		Select("id").
		Where(goqu.C("id").Eq(commentID), goqu.C("owner").Eq(ownerID)).
		ScanValContext(ctx, &id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewAuthorizationError("you are not allowed to access this resource")
	}
	return nil
}

// DeleteComment flips the soft-delete flag. The row stays so replies keep a
// valid parent and the tree can render the redaction.
func (r *CommentRepositoryPostgres) DeleteComment(ctx context.Context, commentID string) error {
	update := r.db.Update("comments").
		Set(goqu.Record{
			"is_deleted": true,
			"updated_at": nowTimestamp(),
		}).
		Where(goqu.C("id").Eq(commentID))

	_, err := update.Executor().ExecContext(ctx)
	return err
}

// GetCommentsByThreadID returns the thread's comments ascending by creation
// time, with the author's username joined in and the like count aggregated
// from comment_likes.
func (r *CommentRepositoryPostgres) GetCommentsByThreadID(ctx context.Context, threadID string) ([]models.Comment, error) {
	query := r.db.From("comments").
		Select(
			goqu.I("comments.id"),
			goqu.I("users.username"),
			goqu.I("comments.content"),
			goqu.I("comments.created_at"),
			goqu.I("comments.is_deleted"),
			goqu.COUNT(goqu.I("comment_likes.user_id")).As("like_count"),
		).
		LeftJoin(goqu.T("users"), goqu.On(goqu.I("users.id").Eq(goqu.I("comments.owner")))).
		LeftJoin(goqu.T("comment_likes"), goqu.On(goqu.I("comment_likes.comment_id").Eq(goqu.I("comments.id")))).
		Where(goqu.I("comments.thread").Eq(threadID)).
		GroupBy(goqu.I("comments.id"), goqu.I("users.username")).
		Order(goqu.I("comments.created_at").Asc())

	var rows []models.CommentRow
	if err := query.ScanStructsContext(ctx, &rows); err != nil {
		return nil, err
	}

	comments := make([]models.Comment, 0, len(rows))
	for _, row := range rows {
		comment, err := models.NewComment(row)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}
