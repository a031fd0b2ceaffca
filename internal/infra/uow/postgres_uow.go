package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"store-reservation/internal/infra/db"
	"store-reservation/internal/infra/readstore"
	"store-reservation/internal/infra/repository"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes; the
// store row lock in StoreRepository.RatingForUpdate handles write-write
// contention on rating aggregates.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, shared.ErrConflictRetry)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return shared.ErrConflictRetry
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	reviewRepo      shared.ReviewRepository
	storeRepo       shared.StoreRepository
	userRepo        shared.UserRepository
	partnerRepo     shared.PartnerRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.dbtx)
	}
	return t.reviewRepo
}

func (t *pgTx) Stores() shared.StoreRepository {
	if t.storeRepo == nil {
		t.storeRepo = repository.NewStoreRepository(t.dbtx)
	}
	return t.storeRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Partners() shared.PartnerRepository {
	if t.partnerRepo == nil {
		t.partnerRepo = repository.NewPartnerRepository(t.dbtx)
	}
	return t.partnerRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	accountStore     *readstore.AccountReadStore
	storeStore       *readstore.StoreReadStore
	reservationStore *readstore.ReservationReadStore
	reviewStore      *readstore.ReviewReadStore
}

func (r *commandReads) accounts() *readstore.AccountReadStore {
	if r.accountStore == nil {
		r.accountStore = readstore.NewAccountReadStore(r.dbtx)
	}
	return r.accountStore
}

func (r *commandReads) UserByID(ctx context.Context, id string) (*shared.UserSnapshot, error) {
	return r.accounts().UserByID(ctx, id)
}

func (r *commandReads) UserExists(ctx context.Context, id string) (bool, error) {
	return r.accounts().UserExists(ctx, id)
}

func (r *commandReads) PartnerByID(ctx context.Context, id string) (*shared.PartnerSnapshot, error) {
	return r.accounts().PartnerByID(ctx, id)
}

func (r *commandReads) StoreByName(ctx context.Context, name string) (*shared.StoreSnapshot, error) {
	if r.storeStore == nil {
		r.storeStore = readstore.NewStoreReadStore(r.dbtx)
	}

	view, err := r.storeStore.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &shared.StoreSnapshot{
		ID:          view.ID,
		PartnerID:   view.PartnerID,
		StoreName:   view.StoreName,
		StoreAddr:   view.StoreAddr,
		Description: view.Description,
		Rating:      view.Rating,
		RatingCount: view.RatingCount,
	}, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id int64) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.dbtx)
	}

	view, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ReservationSnapshot{
		ID:              view.ID,
		UserID:          view.UserID,
		PartnerID:       view.PartnerID,
		StoreName:       view.StoreName,
		Phone:           view.Phone,
		People:          view.People,
		Status:          view.Status,
		StatusUpdatedAt: view.StatusUpdatedAt,
		VisitAt:         view.VisitAt,
		CreatedAt:       view.CreatedAt,
	}, nil
}

func (r *commandReads) reviews() *readstore.ReviewReadStore {
	if r.reviewStore == nil {
		r.reviewStore = readstore.NewReviewReadStore(r.dbtx)
	}
	return r.reviewStore
}

func (r *commandReads) ReviewByID(ctx context.Context, id int64) (*shared.ReviewSnapshot, error) {
	view, err := r.reviews().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ReviewSnapshot{
		ID:            view.ID,
		ReservationID: view.ReservationID,
		UserID:        view.UserID,
		StoreName:     view.StoreName,
		Rating:        view.Rating,
		Text:          view.Text,
		CreatedAt:     view.CreatedAt,
	}, nil
}

func (r *commandReads) ReviewExistsForReservation(ctx context.Context, reservationID int64) (bool, error) {
	return r.reviews().ExistsForReservation(ctx, reservationID)
}
