package commands

import (
	"context"

	domres "store-reservation/internal/domain/reservation"
	domreview "store-reservation/internal/domain/review"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
)

var (
	ErrReviewNotFound        = errs.New("review not found")
	ErrReviewNotOwned        = errs.New("review not owned by user")
	ErrDuplicateReview       = errs.New("review already exists for reservation")
	ErrReservationNotVisited = errs.New("reservation visit not completed")
)

type AddReviewRequest struct {
	ReservationID int64
	UserID        string
	Rating        float64
	Text          string
}

type EditReviewRequest struct {
	ReviewID int64
	UserID   string
	Rating   float64
	Text     string
}

type AddReviewResult struct {
	ReviewID int64
}

type ReviewCommands interface {
	// Add validates the chain in a fixed order: reservation exists, author
	// exists, author matches, no prior review, visit completed, then field
	// bounds. The review insert and the store rating update commit together.
	Add(ctx context.Context, req AddReviewRequest) (*AddReviewResult, error)
	// Edit re-validates ownership and bounds, then moves the store mean by
	// the rating delta. The review count is unchanged.
	Edit(ctx context.Context, req EditReviewRequest) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) Add(ctx context.Context, req AddReviewRequest) (*AddReviewResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resSnap, derr := tx.Reads().ReservationByID(ctx, req.ReservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return derr
		}

		exists, derr := tx.Reads().UserExists(ctx, req.UserID)
		if derr != nil {
			return derr
		}
		if !exists {
			return ErrUserNotFound
		}

		if resSnap.UserID != req.UserID {
			return ErrReviewNotOwned
		}

		dup, derr := tx.Reads().ReviewExistsForReservation(ctx, req.ReservationID)
		if derr != nil {
			return derr
		}
		if dup {
			return ErrDuplicateReview
		}

		if resSnap.Status != string(domres.StatusUseComplete) {
			return ErrReservationNotVisited
		}

		rev, derr := domreview.NewReview(req.ReservationID, req.UserID, resSnap.StoreName, req.Rating, req.Text, uc.clock.Now())
		if derr != nil {
			return derr
		}

		id, derr := tx.Reviews().Create(ctx, rev)
		if derr != nil {
			return derr
		}
		createdID = id

		stats, derr := tx.Stores().RatingForUpdate(ctx, resSnap.StoreName)
		if derr != nil {
			return derr
		}
		return tx.Stores().UpdateRating(ctx, resSnap.StoreName, stats.Add(rev.Rating().Value()))
	})
	if err != nil {
		return nil, err
	}
	return &AddReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) Edit(ctx context.Context, req EditReviewRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, req.ReviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFound
			}
			return derr
		}
		if snap.UserID != req.UserID {
			return ErrReviewNotOwned
		}

		rev, derr := reviewFromSnapshot(snap)
		if derr != nil {
			return derr
		}
		oldRating, derr := rev.Edit(req.Rating, req.Text, uc.clock.Now())
		if derr != nil {
			return derr
		}

		if derr = tx.Reviews().Update(ctx, rev); derr != nil {
			return derr
		}

		stats, derr := tx.Stores().RatingForUpdate(ctx, snap.StoreName)
		if derr != nil {
			return derr
		}
		next, derr := stats.Edit(oldRating.Value(), rev.Rating().Value())
		if derr != nil {
			return derr
		}
		return tx.Stores().UpdateRating(ctx, snap.StoreName, next)
	})
}

func reviewFromSnapshot(snap *shared.ReviewSnapshot) (*domreview.Review, error) {
	rating, err := domreview.NewRating(snap.Rating)
	if err != nil {
		return nil, err
	}
	text, err := domreview.NewText(snap.Text)
	if err != nil {
		return nil, err
	}
	return domreview.ReconstructReview(
		snap.ID, snap.ReservationID, snap.UserID, snap.StoreName,
		rating, text, snap.CreatedAt, snap.CreatedAt,
	), nil
}
