package commands

import (
	"context"

	domstore "store-reservation/internal/domain/store"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
)

var (
	ErrDuplicateStoreName = errs.New("store name already in use")
	ErrStoreNotOwned      = errs.New("store not owned by partner")
	ErrPartnerNotFound    = errs.New("partner not found")
)

type RegisterStoreRequest struct {
	PartnerID   string
	StoreName   string
	StoreAddr   string
	Description string
}

type UpdateStoreInfoRequest struct {
	PartnerID   string
	StoreName   string
	StoreAddr   string
	Description string
}

type RegisterStoreResult struct {
	StoreID int64
}

type StoreCommands interface {
	Register(ctx context.Context, req RegisterStoreRequest) (*RegisterStoreResult, error)
	// UpdateInfo changes address and description. Store names are stable
	// identifiers referenced by reservations, so renames are not supported.
	UpdateInfo(ctx context.Context, req UpdateStoreInfoRequest) error
}

type storeUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewStoreUseCase(uow shared.UnitOfWork, clk clock.Clock) StoreCommands {
	return &storeUseCaseImpl{uow: uow, clock: clk}
}

func (uc *storeUseCaseImpl) Register(ctx context.Context, req RegisterStoreRequest) (*RegisterStoreResult, error) {
	st, err := domstore.NewStore(req.PartnerID, req.StoreName, req.StoreAddr, req.Description, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().PartnerByID(ctx, req.PartnerID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPartnerNotFound
			}
			return derr
		}

		id, derr := tx.Stores().Create(ctx, st)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateStoreName
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RegisterStoreResult{StoreID: createdID}, nil
}

func (uc *storeUseCaseImpl) UpdateInfo(ctx context.Context, req UpdateStoreInfoRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().StoreByName(ctx, req.StoreName)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrStoreNotFound
			}
			return derr
		}

		stats, derr := domstore.NewRatingStats(snap.Rating, snap.RatingCount)
		if derr != nil {
			return derr
		}
		st := domstore.ReconstructStore(
			snap.ID, snap.PartnerID, snap.StoreName, snap.StoreAddr, snap.Description,
			stats, uc.clock.Now(), uc.clock.Now(),
		)
		if !st.IsOwnedBy(req.PartnerID) {
			return ErrStoreNotOwned
		}
		if derr = st.UpdateInfo(req.StoreAddr, req.Description, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Stores().UpdateInfo(ctx, st)
	})
}
