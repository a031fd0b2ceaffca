package commands

import (
	"context"

	"store-reservation/internal/domain/user"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/pkg/password"
	"store-reservation/internal/usecase/shared"
)

var (
	ErrPasswordCheckMismatch = errs.New("password confirmation does not match")
	ErrDuplicateLoginID      = errs.New("login id already in use")
)

type RegisterUserRequest struct {
	ID            string
	Password      string
	PasswordCheck string
	Phone         string
}

type UserCommands interface {
	Register(ctx context.Context, req RegisterUserRequest) error
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk}
}

func (uc *userUseCaseImpl) Register(ctx context.Context, req RegisterUserRequest) error {
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

	u := user.NewUser(loginID, hash, phone, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrDuplicateLoginID
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}
