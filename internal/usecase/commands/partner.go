package commands

import (
	"context"

	"store-reservation/internal/domain/partner"
	"store-reservation/internal/domain/user"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/pkg/password"
	"store-reservation/internal/usecase/shared"
)

type RegisterPartnerRequest struct {
	ID            string
	Password      string
	PasswordCheck string
	Phone         string
}

type PartnerCommands interface {
	Register(ctx context.Context, req RegisterPartnerRequest) error
}

type partnerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPartnerUseCase(uow shared.UnitOfWork, clk clock.Clock) PartnerCommands {
	return &partnerUseCaseImpl{uow: uow, clock: clk}
}

func (uc *partnerUseCaseImpl) Register(ctx context.Context, req RegisterPartnerRequest) error {
	if req.Password != req.PasswordCheck {
		return ErrPasswordCheckMismatch
	}

	loginID, err := user.NewLoginID(req.ID)
	if err != nil {
		return err
	}
	phone, err := user.NewPhoneNumber(req.Phone)
	if err != nil {
		return err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	p := partner.NewPartner(loginID, hash, phone, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Partners().Create(ctx, p)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrDuplicateLoginID
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}
