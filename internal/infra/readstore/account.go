package readstore

import (
	"context"

	"store-reservation/internal/infra"
	"store-reservation/internal/infra/db"
	"store-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// AccountReadStore serves command-side lookups against the users and
// partners tables, including the password hashes used for login.
type AccountReadStore struct {
	db db.DBTX
}

func NewAccountReadStore(dbtx db.DBTX) *AccountReadStore {
	return &AccountReadStore{db: dbtx}
}

func (r *AccountReadStore) UserByID(ctx context.Context, id string) (*shared.UserSnapshot, error) {
	const query = `SELECT id, phone FROM users WHERE id = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Phone)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query user", err)
	}
	return &snap, nil
}

func (r *AccountReadStore) UserExists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *AccountReadStore) PartnerByID(ctx context.Context, id string) (*shared.PartnerSnapshot, error) {
	const query = `SELECT id, phone FROM partners WHERE id = $1`

	var snap shared.PartnerSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Phone)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query partner", err)
	}
	return &snap, nil
}

func (r *AccountReadStore) UserPasswordHash(ctx context.Context, loginID string) (string, error) {
	const query = `SELECT password_hash FROM users WHERE id = $1`

	var hash string
	err := r.db.QueryRow(ctx, query, loginID).Scan(&hash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to query user credentials", err)
	}
	return hash, nil
}

func (r *AccountReadStore) PartnerPasswordHash(ctx context.Context, loginID string) (string, error) {
	const query = `SELECT password_hash FROM partners WHERE id = $1`

	var hash string
	err := r.db.QueryRow(ctx, query, loginID).Scan(&hash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to query partner credentials", err)
	}
	return hash, nil
}
