package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/ForumLoop/apperrors"
	"github.com/ForumLoop/models"
)

type ReplyRepositoryPostgres struct {
	db    *goqu.Database
	newID IDGenerator
}

func NewReplyRepositoryPostgres(db *goqu.Database, newID IDGenerator) *ReplyRepositoryPostgres {
	return &ReplyRepositoryPostgres{db: db, newID: newID}
}

func (r *ReplyRepositoryPostgres) AddReply(ctx context.Context, reply models.AddReply) (models.AddedReply, error) {
	now := nowTimestamp()

	insert := r.db.Insert("replies").Rows(goqu.Record{
		"id":         "reply-" + r.newID(),
		"content":    reply.Content,
		"comment":    reply.Comment,
		"owner":      reply.Owner,
		"is_deleted": false,
		"created_at": now,
		"updated_at": now,
	}).Returning("id", "content", "owner")

	var added models.AddedReply
	if _, err := insert.Executor().ScanStructContext(ctx, &added); err != nil {
		return models.AddedReply{}, err
	}
	return added, nil
}

// CheckReply requires the reply to sit under the given comment, and that
// comment to sit under the given thread, so neither id can be reused across
// parents.
func (r *ReplyRepositoryPostgres) CheckReply(ctx context.Context, replyID, commentID, threadID string) error {
	var id string
	found, err := r.db.From("replies").
		Select(goqu.I("replies.id")).
		Join(goqu.T("comments"), goqu.On(goqu.I("comments.id").Eq(goqu.I("replies.comment")))).
		Where(
			goqu.I("replies.id").Eq(replyID),
			goqu.I("replies.comment").Eq(commentID),
			goqu.I("comments.thread").Eq(threadID),
		).
		ScanValContext(ctx, &id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError("reply not found")
	}
	return nil
}

func (r *ReplyRepositoryPostgres) VerifyReplyOwner(ctx context.Context, replyID, ownerID string) error {
	var id string
	found, err := r.db.From("replies").
		Select("id").
		Where(goqu.C("id").Eq(replyID), goqu.C("owner").Eq(ownerID)).
		ScanValContext(ctx, &id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewAuthorizationError("you are not allowed to access this resource")
	}
	return nil
}

func (r *ReplyRepositoryPostgres) DeleteReply(ctx context.Context, replyID string) error {
	update := r.db.Update("replies").
		Set(goqu.Record{
			"is_deleted": true,
			"updated_at": nowTimestamp(),
		}).
		Where(goqu.C("id").Eq(replyID))

	_, err := update.Executor().ExecContext(ctx)
	return err
}

// GetRepliesByThreadID returns every reply under the thread's comments,
// ascending by creation time.
func (r *ReplyRepositoryPostgres) GetRepliesByThreadID(ctx context.Context, threadID string) ([]models.Reply, error) {
	query := r.db.From("replies").
		Select(
			goqu.I("replies.id"),
			goqu.I("replies.content"),
			goqu.I("users.username"),
			goqu.I("replies.comment"),
			goqu.I("replies.created_at"),
			goqu.I("replies.is_deleted"),
		).
		Join(goqu.T("comments"), goqu.On(goqu.I("comments.id").Eq(goqu.I("replies.comment")))).
		LeftJoin(goqu.T("users"), goqu.On(goqu.I("users.id").Eq(goqu.I("replies.owner")))).
		Where(goqu.I("comments.thread").Eq(threadID)).
		Order(goqu.I("replies.created_at").Asc())

	var rows []models.ReplyRow
	if err := query.ScanStructsContext(ctx, &rows); err != nil {
		return nil, err
	}

	replies := make([]models.Reply, 0, len(rows))
	for _, row := range rows {
		reply, err := models.NewReply(row)
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, nil
}
