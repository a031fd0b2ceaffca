package repository

import (
	"context"

	"store-reservation/internal/domain/user"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/db"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, password_hash, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		u.ID().String(),
		u.PasswordHash(),
		u.Phone().String(),
		u.CreatedAt(),
		u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, classifyKind(err))
	}
	return nil
}
