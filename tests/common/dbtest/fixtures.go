//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the minimal surface fixtures need; both pgxpool.Pool and pgx.Tx
// satisfy it.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	// TestPassword is the plain-text password matching every fixture account.
	TestPassword = "password123"

	// TestPhone is the phone number stored on fixture accounts and reservations.
	// Its last four digits are "5678", which arrival-check tests rely on.
	TestPhone = "01012345678"

	// bcrypt hash of TestPassword, precomputed so fixtures skip the hashing cost.
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, id string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO users (id, password_hash, phone) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		id, testPasswordHash, TestPhone)
	require.NoError(t, err)
}

func CreateTestPartner(t *testing.T, db DBLike, id string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO partners (id, password_hash, phone) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		id, testPasswordHash, TestPhone)
	require.NoError(t, err)
}

func CreateTestStore(t *testing.T, db DBLike, partnerID, storeName string) int64 {
	t.Helper()

	var storeID int64
	ctx := context.Background()
	err := db.QueryRow(ctx,
		`INSERT INTO stores (partner_id, store_name, store_addr, description)
		 VALUES ($1, $2, '12 Main Street', 'Fixture store')
		 ON CONFLICT (store_name) DO UPDATE SET store_addr = stores.store_addr
		 RETURNING id`,
		partnerID, storeName).Scan(&storeID)
	require.NoError(t, err)

	return storeID
}

func CreateTestReservation(t *testing.T, db DBLike, userID, partnerID, storeName string, visitAt time.Time, status string) int64 {
	t.Helper()

	var reservationID int64
	ctx := context.Background()
	err := db.QueryRow(ctx,
		`INSERT INTO reservations (user_id, partner_id, store_name, phone, people, status, status_updated_at, visit_at)
		 VALUES ($1, $2, $3, $4, 2, $5, now(), $6)
		 RETURNING id`,
		userID, partnerID, storeName, TestPhone, status, visitAt).Scan(&reservationID)
	require.NoError(t, err)

	return reservationID
}

func CreateTestReview(t *testing.T, db DBLike, reservationID int64, userID, storeName string, rating float64, text string) int64 {
	t.Helper()

	var reviewID int64
	ctx := context.Background()
	err := db.QueryRow(ctx,
		`INSERT INTO reviews (reservation_id, user_id, store_name, rating, review_text)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		reservationID, userID, storeName, rating, text).Scan(&reviewID)
	require.NoError(t, err)

	return reviewID
}

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		"TRUNCATE users, partners, stores, reservations, reviews RESTART IDENTITY CASCADE")
	return err
}
