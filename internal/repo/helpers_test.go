package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/lodgings-api/internal/domain"
	"github.com/pkordes/lodgings-api/testutil"
)

// newTestTx opens a transaction against the test database that is rolled back
// when the test finishes, giving free per-test isolation.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// lodgingFixture returns a valid domain.Lodging. Callers override fields as needed.
func lodgingFixture() domain.Lodging {
	return domain.Lodging{
		Name:        "Cozy Cabin",
		Description: "A small cabin by the river",
		Street:      "1 River Rd",
		City:        "Corvallis",
		State:       "OR",
		Zip:         "97330",
		Price:       129.5,
	}
}

func userFixture() domain.User {
	return domain.User{
		Name:         "Bob",
		Email:        "bob@builder.com",
		PasswordHash: "$2a$08$notarealhashnotarealhashnotarealhashnotarealhas",
	}
}
