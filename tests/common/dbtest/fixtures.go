//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt of DefaultPassword
const (
	DefaultPassword = "password123"
	passwordHash    = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

// DBLike is satisfied by *pgxpool.Pool, pgx.Tx and *pgx.Conn, so fixtures
// can run inside a test transaction as well as against the shared pool.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestTenant(t *testing.T, db DBLike, name, status string) uuid.UUID {
	t.Helper()

	tenantID := uuid.New()
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "-")

	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO tenants (id, name, slug, status, phone, cr_number, address, city)
		VALUES ($1, $2, $3, $4, '+96890000000', 'CR-TEST', 'Test address', 'Muscat')
		ON CONFLICT (name) DO NOTHING`,
		tenantID, name, slug, status)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM tenants WHERE name = $1", name).Scan(&tenantID))
	}
	return tenantID
}

// CreateTestUser inserts an active account with DefaultPassword; tenantID may be nil
func CreateTestUser(t *testing.T, db DBLike, email, role string, tenantID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, tenant_id, full_name, is_active)
		VALUES ($1, $2, $3, $4, $5, 'Test User', true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, passwordHash, role, tenantID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

// CreateTestListing inserts an available car priced in baisa; base rate is stored equal to the daily rate
func CreateTestListing(t *testing.T, db DBLike, tenantID uuid.UUID, dailyRateBaisa int64) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO listings (id, tenant_id, category, make, model, year, daily_rate_baisa, base_rate_baisa, features, specs)
		VALUES ($1, $2, 'car', 'Toyota', 'Land Cruiser', 2022, $3, $3, '{GPS}', '{"transmission":"automatic","seats":"7"}')`,
		listingID, tenantID, dailyRateBaisa)
	require.NoError(t, err)
	return listingID
}

func CountBookings(t *testing.T, db DBLike, listingID uuid.UUID) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE listing_id = $1", listingID).Scan(&n))
	return n
}

func CountQueuedJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1 AND status = 'queued'", topic).Scan(&n))
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO locations (name_en, type, sort_rank) VALUES
		    ('Muscat', 'city', 1),
		    ('Salalah', 'city', 2),
		    ('Sohar', 'city', 3);
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
