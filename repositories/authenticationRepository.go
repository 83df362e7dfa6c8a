package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/ForumLoop/apperrors"
)

// AuthenticationRepositoryPostgres stores refresh tokens so they can be
// revoked on logout.
type AuthenticationRepositoryPostgres struct {
	db *goqu.Database
}

func NewAuthenticationRepositoryPostgres(db *goqu.Database) *AuthenticationRepositoryPostgres {
	return &AuthenticationRepositoryPostgres{db: db}
}

func (r *AuthenticationRepositoryPostgres) AddToken(ctx context.Context, token string) error {
	insert := r.db.Insert("authentications").Rows(goqu.Record{"token": token})
	_, err := insert.Executor().ExecContext(ctx)
	return err
}

func (r *AuthenticationRepositoryPostgres) CheckToken(ctx context.Context, token string) error {
	var stored string
	found, err := r.db.From("authentications").
		Select("token").
		Where(goqu.C("token").Eq(token)).
		ScanValContext(ctx, &stored)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewInvariantError("refresh token is not registered")
	}
	return nil
}

func (r *AuthenticationRepositoryPostgres) DeleteToken(ctx context.Context, token string) error {
	del := r.db.Delete("authentications").Where(goqu.C("token").Eq(token))
	_, err := del.Executor().ExecContext(ctx)
	return err
}
