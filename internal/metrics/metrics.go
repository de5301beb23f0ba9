package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathanfit_class_reservations_total",
			Help: "Total number of class reservations",
		},
		[]string{"category"},
	)

	ReservationCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pathanfit_reservation_cancellations_total",
			Help: "Total number of reservation cancellations",
		},
	)

	WorkoutsLoggedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pathanfit_workouts_logged_total",
			Help: "Total number of workouts logged",
		},
	)

	ProgressResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pathanfit_progress_resets_total",
			Help: "Total number of progress tracker resets",
		},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathanfit_bookings_total",
			Help: "Total number of booking submissions",
		},
		[]string{"kind"},
	)

	NewsletterSignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pathanfit_newsletter_signups_total",
			Help: "Total number of newsletter signups",
		},
	)

	CounterAnimationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathanfit_counter_animations_total",
			Help: "Total number of count-up animations by outcome",
		},
		[]string{"outcome"},
	)
)

func RecordReservation(category string) {
	ReservationsTotal.WithLabelValues(category).Inc()
}

func RecordReservationCancellation() {
	ReservationCancellationsTotal.Inc()
}

func RecordWorkoutLogged() {
	WorkoutsLoggedTotal.Inc()
}

func RecordProgressReset() {
	ProgressResetsTotal.Inc()
}

func RecordBooking(kind string) {
	BookingsTotal.WithLabelValues(kind).Inc()
}

func RecordNewsletterSignup() {
	NewsletterSignupsTotal.Inc()
}

func RecordCounterAnimation(outcome string) {
	CounterAnimationsTotal.WithLabelValues(outcome).Inc()
}
