package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Faisal-badshah/pathan-fitness/internal/catalog"
	"github.com/Faisal-badshah/pathan-fitness/internal/logger"
	"github.com/Faisal-badshah/pathan-fitness/internal/metrics"
	"github.com/Faisal-badshah/pathan-fitness/internal/storage"
)

const (
	trialStoreName      = "trial-booking"
	newsletterStoreName = "newsletter"

	// Submission latencies mirror the simulated network delays of the site.
	bookingSubmitDelay    = 1500 * time.Millisecond
	newsletterSubmitDelay = 1000 * time.Millisecond
)

var ErrUnknownService = errors.New("unknown trial service")

// Service runs the trial, full-booking and newsletter submission flows.
// Submissions block for a simulated latency that honors context
// cancellation, so a torn-down caller never gets a late state write.
type Service interface {
	SubmitTrial(ctx context.Context, one TrialStepOne, two TrialStepTwo) (*TrialBooking, error)
	CurrentTrial(ctx context.Context) *TrialBooking
	ClearTrial(ctx context.Context) error
	SubmitBooking(ctx context.Context, req BookingRequest) (*BookingConfirmation, error)
	Subscribe(ctx context.Context, email string) (*NewsletterSubscription, error)
	CurrentSubscription(ctx context.Context) *NewsletterSubscription
}

type service struct {
	store           storage.Store
	trialKey        string
	newsletterKey   string
	now             func() time.Time
	bookingDelay    time.Duration
	newsletterDelay time.Duration
}

func NewService(store storage.Store, keyPrefix string) Service {
	return &service{
		store:           store,
		trialKey:        storage.Key(keyPrefix, trialStoreName),
		newsletterKey:   storage.Key(keyPrefix, newsletterStoreName),
		now:             time.Now,
		bookingDelay:    bookingSubmitDelay,
		newsletterDelay: newsletterSubmitDelay,
	}
}

// SubmitTrial validates both steps, waits out the simulated latency, and
// persists the booking. A new trial replaces any previous one.
func (s *service) SubmitTrial(ctx context.Context, one TrialStepOne, two TrialStepTwo) (*TrialBooking, error) {
	if errs := ValidateStruct(one); errs != nil {
		return nil, errs
	}
	if errs := ValidateStruct(two); errs != nil {
		return nil, errs
	}
	if catalog.TrialServiceByID(two.ServiceID) == nil {
		return nil, ErrUnknownService
	}

	if err := s.wait(ctx, s.bookingDelay); err != nil {
		return nil, err
	}

	now := s.now()
	trial := TrialBooking{
		Name:          one.Name,
		Email:         one.Email,
		Phone:         one.Phone,
		ServiceID:     two.ServiceID,
		PreferredDate: two.PreferredDate,
		PreferredTime: two.PreferredTime,
		BookingID:     NewTrialBookingID(now),
		CreatedAt:     now.Format(time.RFC3339),
	}

	if err := s.store.Set(ctx, s.trialKey, trial); err != nil {
		return nil, err
	}

	metrics.RecordBooking("trial")
	logger.Infof("trial booked: %s for %s at %s", trial.BookingID, trial.PreferredDate, trial.PreferredTime)
	return &trial, nil
}

// CurrentTrial returns the persisted trial booking, or nil when none exists.
func (s *service) CurrentTrial(ctx context.Context) *TrialBooking {
	var trial TrialBooking
	if err := s.store.Get(ctx, s.trialKey, &trial); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warnf("trial booking unreadable, treating as absent: %v", err)
		}
		return nil
	}
	return &trial
}

// ClearTrial removes the stored booking so a new one can be made.
func (s *service) ClearTrial(ctx context.Context) error {
	return s.store.Delete(ctx, s.trialKey)
}

// SubmitBooking validates the full booking form and produces a confirmation.
// Full bookings are display-only and are not persisted.
func (s *service) SubmitBooking(ctx context.Context, req BookingRequest) (*BookingConfirmation, error) {
	if errs := ValidateStruct(req); errs != nil {
		return nil, errs
	}

	if err := s.wait(ctx, s.bookingDelay); err != nil {
		return nil, err
	}

	now := s.now()
	conf := BookingConfirmation{
		Reference: NewBookingReference(now),
		Request:   req,
		CreatedAt: now.Format(time.RFC3339),
	}

	metrics.RecordBooking("full")
	logger.Infof("booking confirmed: %s (%s)", conf.Reference, req.Service)
	return &conf, nil
}

// Subscribe validates the email, waits out the simulated latency, and
// persists the signup.
func (s *service) Subscribe(ctx context.Context, email string) (*NewsletterSubscription, error) {
	form := struct {
		Email string `validate:"required,email"`
	}{Email: email}
	if errs := ValidateStruct(form); errs != nil {
		return nil, errs
	}

	if err := s.wait(ctx, s.newsletterDelay); err != nil {
		return nil, err
	}

	sub := NewsletterSubscription{
		Email:        email,
		SubscribedAt: s.now().Format(time.RFC3339),
	}

	if err := s.store.Set(ctx, s.newsletterKey, sub); err != nil {
		return nil, err
	}

	metrics.RecordNewsletterSignup()
	logger.Infof("newsletter signup: %s", email)
	return &sub, nil
}

func (s *service) CurrentSubscription(ctx context.Context) *NewsletterSubscription {
	var sub NewsletterSubscription
	if err := s.store.Get(ctx, s.newsletterKey, &sub); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warnf("newsletter record unreadable, treating as absent: %v", err)
		}
		return nil
	}
	return &sub
}

// wait blocks for the simulated submission latency, aborting cleanly if the
// caller goes away first.
func (s *service) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
