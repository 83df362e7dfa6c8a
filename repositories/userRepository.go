package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/ForumLoop/apperrors"
	"github.com/ForumLoop/models"
)

type UserRepositoryPostgres struct {
	db    *goqu.Database
	newID IDGenerator
}

func NewUserRepositoryPostgres(db *goqu.Database, newID IDGenerator) *UserRepositoryPostgres {
	return &UserRepositoryPostgres{db: db, newID: newID}
}

func (r *UserRepositoryPostgres) AddUser(ctx context.Context, user models.RegisterUser) (models.RegisteredUser, error) {
	now := nowTimestamp()

	insert := r.db.Insert("users").Rows(goqu.Record{
		"id":         "user-" + r.newID(),
		"username":   user.Username,
		"password":   user.Password,
		"fullname":   user.Fullname,
		"created_at": now,
		"updated_at": now,
	}).Returning("id", "username", "fullname")

	var registered models.RegisteredUser
	if _, err := insert.Executor().ScanStructContext(ctx, &registered); err != nil {
		return models.RegisteredUser{}, err
	}
	return registered, nil
}

func (r *UserRepositoryPostgres) VerifyAvailableUsername(ctx context.Context, username string) error {
	count, err := r.db.From("users").
		Where(goqu.C("username").Eq(username)).
		CountContext(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewInvariantError("username is already taken")
	}
	return nil
}

func (r *UserRepositoryPostgres) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	found, err := r.db.From("users").
		Where(goqu.C("username").Eq(username)).
		ScanStructContext(ctx, &user)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, apperrors.NewAuthenticationError("username or password is wrong")
	}
	return user, nil
}

func (r *UserRepositoryPostgres) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	found, err := r.db.From("users").
		Where(goqu.C("id").Eq(userID)).
		ScanStructContext(ctx, &user)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, apperrors.NewNotFoundError("user not found")
	}
	return user, nil
}
