package progress

import (
	"context"
	"errors"
	"time"

	"github.com/Faisal-badshah/pathan-fitness/internal/logger"
	"github.com/Faisal-badshah/pathan-fitness/internal/metrics"
	"github.com/Faisal-badshah/pathan-fitness/internal/storage"
)

const storeName = "progress"

// Service owns the persisted progress record. Every mutation reads the
// current snapshot, applies a pure update, and writes the full record back.
type Service interface {
	Get(ctx context.Context) Record
	SetGoals(ctx context.Context, start, current, goal float64) (Record, error)
	UpdateWeight(ctx context.Context, weight float64) (Record, error)
	LogWorkout(ctx context.Context) (Record, error)
	Reset(ctx context.Context) (Record, error)
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

// Get loads the persisted record, falling back to the default on a missing
// or unreadable value.
func (s *service) Get(ctx context.Context) Record {
	var rec Record
	if err := s.store.Get(ctx, s.key, &rec); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warnf("progress record unreadable, using default: %v", err)
		}
		return DefaultRecord()
	}
	return rec
}

func (s *service) SetGoals(ctx context.Context, start, current, goal float64) (Record, error) {
	rec := SetGoals(s.Get(ctx), start, current, goal, s.now())
	if err := s.store.Set(ctx, s.key, rec); err != nil {
		return Record{}, err
	}
	logger.Infof("progress goals set: start=%.1fkg goal=%.1fkg", start, goal)
	return rec, nil
}

func (s *service) UpdateWeight(ctx context.Context, weight float64) (Record, error) {
	rec := UpdateWeight(s.Get(ctx), weight, s.now())
	if err := s.store.Set(ctx, s.key, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *service) LogWorkout(ctx context.Context) (Record, error) {
	rec := LogWorkout(s.Get(ctx), s.now())
	if err := s.store.Set(ctx, s.key, rec); err != nil {
		return Record{}, err
	}

	metrics.RecordWorkoutLogged()
	logger.Infof("workout logged: %d total, %d day streak", rec.WorkoutsLogged, rec.Streak)
	return rec, nil
}

func (s *service) Reset(ctx context.Context) (Record, error) {
	rec := Reset()
	if err := s.store.Set(ctx, s.key, rec); err != nil {
		return Record{}, err
	}

	metrics.RecordProgressReset()
	logger.Info("progress tracker reset")
	return rec, nil
}
