package repository

import (
	"context"

	"store-reservation/internal/domain/partner"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/db"
)

type PartnerRepository struct {
	db db.DBTX
}

func NewPartnerRepository(dbtx db.DBTX) *PartnerRepository {
	return &PartnerRepository{db: dbtx}
}

func (r *PartnerRepository) Create(ctx context.Context, p *partner.Partner) error {
	const query = `
		INSERT INTO partners (id, password_hash, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		p.ID().String(),
		p.PasswordHash(),
		p.Phone().String(),
		p.CreatedAt(),
		p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create partner", err, classifyKind(err))
	}
	return nil
}
