package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/ForumLoop/apperrors"
	"github.com/ForumLoop/models"
)

type ThreadRepositoryPostgres struct {
	db    *goqu.Database
	newID IDGenerator
}

func NewThreadRepositoryPostgres(db *goqu.Database, newID IDGenerator) *ThreadRepositoryPostgres {
	return &ThreadRepositoryPostgres{db: db, newID: newID}
}

func (r *ThreadRepositoryPostgres) AddThread(ctx context.Context, thread models.AddThread) (models.AddedThread, error) {
	now := nowTimestamp()

	insert := r.db.Insert("threads").Rows(goqu.Record{
		"id":         "thread-" + r.newID(),
		"title":      thread.Title,
		"body":       thread.Body,
		"owner":      thread.Owner,
		"created_at": now,
		"updated_at": now,
	}).Returning("id", "title", "owner")

	var added models.AddedThread
	if _, err := insert.Executor().ScanStructContext(ctx, &added); err != nil {
		return models.AddedThread{}, err
	}
	return added, nil
}

func (r *ThreadRepositoryPostgres) GetThread(ctx context.Context, threadID string) (models.Thread, error) {
	query := r.db.From("threads").
		Select(
			goqu.I("threads.id"),
			goqu.I("threads.title"),
			goqu.I("threads.body"),
			goqu.I("threads.created_at"),
			goqu.I("users.username"),
		).
		LeftJoin(goqu.T("users"), goqu.On(goqu.I("users.id").Eq(goqu.I("threads.owner")))).
		Where(goqu.I("threads.id").Eq(threadID))

	var row models.ThreadRow
	found, err := query.ScanStructContext(ctx, &row)
	if err != nil {
		return models.Thread{}, err
	}
	if !found {
		return models.Thread{}, apperrors.NewNotFoundError("thread not found")
	}

	return models.NewThread(row)
}

func (r *ThreadRepositoryPostgres) CheckThread(ctx context.Context, threadID string) error {
	var id string
	found, err := r.db.From("threads").
		Select("id").
		Where(goqu.C("id").Eq(threadID)).
		ScanValContext(ctx, &id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError("thread not found")
	}
	return nil
}
