package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/ptr"
)

func TestCandidatesQuery(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	query, args, err := candidatesQuery(domain.VenueUnladGymnasium, dates, ptr.Ptr("bk-1"), true).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM bookings b")
	assert.Contains(t, query, "b.venue = $1")
	assert.Contains(t, query, "b.archived = $2")
	assert.Contains(t, query, "EXISTS (SELECT 1 FROM booking_dates d WHERE d.booking_id = b.id AND d.booking_date IN ($3,$4))")
	assert.Contains(t, query, "b.id <> $5")
	assert.Contains(t, query, "ORDER BY b.created_at ASC, b.id ASC FOR UPDATE")
	assert.Equal(t, []interface{}{"Unlad Gymnasium", false, dates[0], dates[1], "bk-1"}, args)
}

func TestCandidatesQuery_NoLockOutsideTx(t *testing.T) {
	query, _, err := candidatesQuery(domain.VenueNoveletaPlaza, []time.Time{time.Now()}, nil, false).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "FOR UPDATE")
	assert.NotContains(t, query, "<>")
}

func TestListQuery(t *testing.T) {
	venue := domain.VenueNoveletaPlaza
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := listQuery(domain.BookingsFilter{
		Venue:  &venue,
		Status: domain.StatusFilterAll,
		From:   &from,
		To:     &to,
		Search: "50%",
		Sort:   domain.SortAsc,
	}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "b.archived =")
	assert.Contains(t, query, "b.venue = $1")
	assert.Contains(t, query, "d.booking_date >= $2 AND d.booking_date <= $3")
	assert.Contains(t, query, "b.requested_by ILIKE $4 OR b.event_name ILIKE $5 OR b.venue ILIKE $6")
	assert.Contains(t, query, "ORDER BY b.booking_date ASC, b.start_time ASC")
	assert.Equal(t, `%50\%%`, args[3])
}

func TestListQuery_DefaultsToActiveNewestFirst(t *testing.T) {
	query, args, err := listQuery(domain.BookingsFilter{}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "b.archived = $1")
	assert.Equal(t, []interface{}{false}, args)
	assert.Contains(t, query, "ORDER BY b.booking_date DESC")
}
