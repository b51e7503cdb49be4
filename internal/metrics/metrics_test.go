package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/bookings", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/bookings", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordBookingRequest(t *testing.T) {
	BookingRequestsTotal.Reset()

	RecordBookingRequest("room", "pending")
	RecordBookingRequest("room", "approved")
	RecordBookingRequest("board_game", "pending")

	pendingRooms := testutil.ToFloat64(BookingRequestsTotal.WithLabelValues("room", "pending"))
	approvedRooms := testutil.ToFloat64(BookingRequestsTotal.WithLabelValues("room", "approved"))
	pendingGames := testutil.ToFloat64(BookingRequestsTotal.WithLabelValues("board_game", "pending"))

	assert.Equal(t, float64(1), pendingRooms)
	assert.Equal(t, float64(1), approvedRooms)
	assert.Equal(t, float64(1), pendingGames)
}

func TestRecordConflict(t *testing.T) {
	BookingConflictsTotal.Reset()

	RecordConflict("room", "create")
	RecordConflict("room", "approve")
	RecordConflict("room", "approve")

	createConflicts := testutil.ToFloat64(BookingConflictsTotal.WithLabelValues("room", "create"))
	approveConflicts := testutil.ToFloat64(BookingConflictsTotal.WithLabelValues("room", "approve"))

	assert.Equal(t, float64(1), createConflicts)
	assert.Equal(t, float64(2), approveConflicts)
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("success")
	RecordEmail("failed")
	RecordEmail("success")

	success := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("success"))
	failed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("failed"))

	assert.Equal(t, float64(2), success)
	assert.Equal(t, float64(1), failed)
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(4)
	assert.Equal(t, float64(4), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}
