//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"math/big"
	"testing"
	"time"

	"order-fulfillment/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDConversions(t *testing.T) {
	id := uuid.New()

	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDToPgtype(id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
}

func TestStringPtrConversions(t *testing.T) {
	reason := "shipping cost exceeds threshold"

	got := pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&reason))
	require.NotNil(t, got)
	assert.Equal(t, reason, *got)

	assert.False(t, pgconv.StringPtrToPgtype(nil).Valid)
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
}

func TestTimeConversions(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now, pgconv.TimeFromPgtype(pgconv.TimeToPgtype(now)))
}

func TestFloat64FromNumeric(t *testing.T) {
	v, err := pgconv.Float64FromNumeric(pgtype.Numeric{Int: big.NewInt(3364), Exp: -2, Valid: true})
	require.NoError(t, err)
	assert.InDelta(t, 33.64, v, 1e-9)

	v, err = pgconv.Float64FromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestDecimalToFloat64(t *testing.T) {
	assert.Equal(t, 12785.43, pgconv.DecimalToFloat64(decimal.RequireFromString("12785.43")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}
