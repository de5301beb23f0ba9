package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/Faisal-badshah/pathan-fitness/internal/catalog"
	"github.com/Faisal-badshah/pathan-fitness/internal/logger"
	"github.com/Faisal-badshah/pathan-fitness/internal/metrics"
	"github.com/Faisal-badshah/pathan-fitness/internal/storage"
)

const storeName = "class-reservations"

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrAlreadyReserved = errors.New("class already reserved")
)

// Service manages the persisted reservation list. At most one reservation may
// exist per class ID; a duplicate reserve is rejected rather than appended.
type Service interface {
	Reserve(ctx context.Context, classID string) (*Reservation, error)
	Cancel(ctx context.Context, classID string) error
	IsReserved(ctx context.Context, classID string) bool
	List(ctx context.Context) []Reservation
}

type service struct {
	store storage.Store
	key   string
	now   func() time.Time
}

func NewService(store storage.Store, keyPrefix string) Service {
	return &service{
		store: store,
		key:   storage.Key(keyPrefix, storeName),
		now:   time.Now,
	}
}

// List loads the persisted reservations, treating a missing or unreadable
// value as an empty list.
func (s *service) List(ctx context.Context) []Reservation {
	var reservations []Reservation
	if err := s.store.Get(ctx, s.key, &reservations); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warnf("reservation list unreadable, starting empty: %v", err)
		}
		return nil
	}
	return reservations
}

func (s *service) Reserve(ctx context.Context, classID string) (*Reservation, error) {
	session, day := catalog.ClassByID(classID)
	if session == nil {
		return nil, ErrClassNotFound
	}

	reservations := s.List(ctx)
	for _, r := range reservations {
		if r.ClassID == classID {
			return nil, ErrAlreadyReserved
		}
	}

	res := Reservation{
		ClassID:    session.ID,
		ClassName:  session.Name,
		Day:        day,
		Time:       session.Time,
		ReservedAt: s.now().Format(time.RFC3339),
	}

	if err := s.store.Set(ctx, s.key, append(reservations, res)); err != nil {
		return nil, err
	}

	metrics.RecordReservation(string(session.Category))
	logger.Infof("reserved %s (%s %s)", session.Name, day, session.Time)
	return &res, nil
}

// Cancel removes every reservation for the class ID. Cancelling a class that
// was never reserved is a no-op.
func (s *service) Cancel(ctx context.Context, classID string) error {
	reservations := s.List(ctx)

	kept := reservations[:0]
	for _, r := range reservations {
		if r.ClassID != classID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(reservations) {
		return nil
	}

	if err := s.store.Set(ctx, s.key, kept); err != nil {
		return err
	}

	metrics.RecordReservationCancellation()
	logger.Infof("cancelled reservation for %s", classID)
	return nil
}

func (s *service) IsReserved(ctx context.Context, classID string) bool {
	for _, r := range s.List(ctx) {
		if r.ClassID == classID {
			return true
		}
	}
	return false
}
