package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordReservation(t *testing.T) {
	ReservationsTotal.Reset()

	RecordReservation("yoga")
	RecordReservation("yoga")
	RecordReservation("core")

	assert.Equal(t, float64(2), testutil.ToFloat64(ReservationsTotal.WithLabelValues("yoga")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ReservationsTotal.WithLabelValues("core")))
}

func TestRecordReservationCancellation(t *testing.T) {
	before := testutil.ToFloat64(ReservationCancellationsTotal)

	RecordReservationCancellation()

	assert.Equal(t, before+1, testutil.ToFloat64(ReservationCancellationsTotal))
}

func TestRecordWorkoutLogged(t *testing.T) {
	before := testutil.ToFloat64(WorkoutsLoggedTotal)

	RecordWorkoutLogged()
	RecordWorkoutLogged()

	assert.Equal(t, before+2, testutil.ToFloat64(WorkoutsLoggedTotal))
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("trial")
	RecordBooking("full")
	RecordBooking("full")

	assert.Equal(t, float64(1), testutil.ToFloat64(BookingsTotal.WithLabelValues("trial")))
	assert.Equal(t, float64(2), testutil.ToFloat64(BookingsTotal.WithLabelValues("full")))
}

func TestRecordCounterAnimation(t *testing.T) {
	CounterAnimationsTotal.Reset()

	RecordCounterAnimation("settled")
	RecordCounterAnimation("cancelled")

	assert.Equal(t, float64(1), testutil.ToFloat64(CounterAnimationsTotal.WithLabelValues("settled")))
	assert.Equal(t, float64(1), testutil.ToFloat64(CounterAnimationsTotal.WithLabelValues("cancelled")))
}
