package commands

import (
	"context"
	"time"

	domres "store-reservation/internal/domain/reservation"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/queries"
	"store-reservation/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrStoreNotFound        = errs.New("store not found")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrReservationNotOwned  = errs.New("reservation not owned by partner")
	ErrDatabaseOperation    = errs.New("database operation failed")
	ErrReservationReadAfter = errs.New("failed to read created reservation")
)

type CreateReservationRequest struct {
	UserID    string
	StoreName string
	People    int
	VisitAt   time.Time
}

type ReservationCommands interface {
	Create(ctx context.Context, req CreateReservationRequest) (*queries.ReservationView, error)
	// ChangeStatus is the partner-side status update. Ownership is the only
	// guard; any known status code may be set from any current status.
	ChangeStatus(ctx context.Context, partnerID string, reservationID int64, statusCode string) error
	// ArrivalCheck is the kiosk flow: match the phone tail, require CONFIRM,
	// require arrival no later than ten minutes before the visit time.
	ArrivalCheck(ctx context.Context, reservationID int64, phoneLast4 string) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, rq queries.ReservationQueries, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, reservationQueries: rq, clock: clk}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, req CreateReservationRequest) (*queries.ReservationView, error) {
	people, err := domres.NewPeople(req.People)
	if err != nil {
		return nil, err
	}

	userSnap, err := uc.uow.CommandReads().UserByID(ctx, req.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	phone, err := domres.NewPhone(userSnap.Phone)
	if err != nil {
		return nil, err
	}

	storeSnap, err := uc.uow.CommandReads().StoreByName(ctx, req.StoreName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	res := domres.NewReservation(req.UserID, phone, storeSnap.PartnerID, storeSnap.StoreName, people, req.VisitAt, uc.clock.Now())

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Reservations().Create(ctx, res)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	// Read-after-write through the read store so the handler returns the
	// same shape as the detail endpoint.
	view, err := uc.reservationQueries.GetDetail(ctx, createdID, req.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationReadAfter)
	}
	return view, nil
}

func (uc *reservationUseCaseImpl) ChangeStatus(ctx context.Context, partnerID string, reservationID int64, statusCode string) error {
	next, err := domres.ParseStatus(statusCode)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, reservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return derr
		}

		res, derr := reservationFromSnapshot(snap)
		if derr != nil {
			return derr
		}
		if !res.IsOwnedBy(partnerID) {
			return ErrReservationNotOwned
		}

		res.SetStatus(next, uc.clock.Now())
		return tx.Reservations().UpdateStatus(ctx, reservationID, res.Status(), res.StatusUpdatedAt())
	})
}

func (uc *reservationUseCaseImpl) ArrivalCheck(ctx context.Context, reservationID int64, phoneLast4 string) (*queries.ReservationView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, reservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return derr
		}

		res, derr := reservationFromSnapshot(snap)
		if derr != nil {
			return derr
		}
		if derr = res.Arrive(phoneLast4, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Reservations().UpdateStatus(ctx, reservationID, res.Status(), res.StatusUpdatedAt())
	})
	if err != nil {
		return nil, err
	}

	snap, err := uc.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationReadAfter)
	}
	return viewFromSnapshot(snap), nil
}

func reservationFromSnapshot(snap *shared.ReservationSnapshot) (*domres.Reservation, error) {
	phone, err := domres.NewPhone(snap.Phone)
	if err != nil {
		return nil, err
	}
	people, err := domres.NewPeople(snap.People)
	if err != nil {
		return nil, err
	}
	status, err := domres.ParseStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	return domres.ReconstructReservation(
		snap.ID, snap.UserID, phone, snap.PartnerID, snap.StoreName,
		people, status, snap.StatusUpdatedAt, snap.VisitAt, snap.CreatedAt,
	), nil
}

func viewFromSnapshot(snap *shared.ReservationSnapshot) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              snap.ID,
		UserID:          snap.UserID,
		PartnerID:       snap.PartnerID,
		StoreName:       snap.StoreName,
		Phone:           snap.Phone,
		People:          snap.People,
		Status:          snap.Status,
		StatusUpdatedAt: snap.StatusUpdatedAt,
		VisitAt:         snap.VisitAt,
		CreatedAt:       snap.CreatedAt,
	}
}
