package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"
)

type CommentLikeRepositoryPostgres struct {
	db *goqu.Database
}

func NewCommentLikeRepositoryPostgres(db *goqu.Database) *CommentLikeRepositoryPostgres {
	return &CommentLikeRepositoryPostgres{db: db}
}

func (r *CommentLikeRepositoryPostgres) IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error) {
	count, err := r.db.From("comment_likes").
		Where(goqu.C("comment_id").Eq(commentID), goqu.C("user_id").Eq(userID)).
		CountContext(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LikeComment inserts the (comment, user) pair. The table has a unique
// constraint on the pair and the insert is ON CONFLICT DO NOTHING, so two
// racing likes from the same user collapse into one row instead of failing.
func (r *CommentLikeRepositoryPostgres) LikeComment(ctx context.Context, commentID, userID string) error {
	insert := r.db.Insert("comment_likes").
		Rows(goqu.Record{
			"comment_id": commentID,
			"user_id":    userID,
			"created_at": nowTimestamp(),
		}).
		OnConflict(goqu.DoNothing())

	_, err := insert.Executor().ExecContext(ctx)
	return err
}

// DislikeComment removes the pair. Deleting an absent row is a no-op, which
// keeps the toggle idempotent at the storage boundary.
func (r *CommentLikeRepositoryPostgres) DislikeComment(ctx context.Context, commentID, userID string) error {
	del := r.db.Delete("comment_likes").
		Where(goqu.C("comment_id").Eq(commentID), goqu.C("user_id").Eq(userID))

	_, err := del.Executor().ExecContext(ctx)
	return err
}
