package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Faisal-badshah/pathan-fitness/internal/animation"
	"github.com/Faisal-badshah/pathan-fitness/internal/booking"
	"github.com/Faisal-badshah/pathan-fitness/internal/catalog"
	"github.com/Faisal-badshah/pathan-fitness/internal/config"
	"github.com/Faisal-badshah/pathan-fitness/internal/gallery"
	"github.com/Faisal-badshah/pathan-fitness/internal/logger"
	"github.com/Faisal-badshah/pathan-fitness/internal/pricing"
	"github.com/Faisal-badshah/pathan-fitness/internal/progress"
	"github.com/Faisal-badshah/pathan-fitness/internal/reservation"
	"github.com/Faisal-badshah/pathan-fitness/internal/storage"
)

func main() {
	logger.Init()
	logger.Info("Starting Pathan Fitness demo")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Fatalf("Failed to open %s store: %v", cfg.StorageBackend, err)
	}
	defer closeStore()
	logger.Infof("Storage ready (%s backend)", cfg.StorageBackend)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Infof("Received signal: %v", sig)
		cancel()
	}()

	if err := run(ctx, cfg, store); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Demo interrupted")
			return
		}
		logger.Fatalf("Demo failed: %v", err)
	}
	logger.Info("Demo finished")
}

func openStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), func() {}, nil
	case config.BackendRedis:
		s := storage.NewRedisStore(cfg.RedisAddr)
		return s, func() { s.Close() }, nil
	case config.BackendFile:
		s, err := storage.NewFileStore(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func run(ctx context.Context, cfg *config.Config, store storage.Store) error {
	if err := showStats(ctx); err != nil {
		return err
	}
	if err := showCalculator(ctx); err != nil {
		return err
	}
	if err := showReservations(ctx, cfg, store); err != nil {
		return err
	}
	if err := showProgress(ctx, cfg, store); err != nil {
		return err
	}
	if err := showBooking(ctx, cfg, store); err != nil {
		return err
	}
	showSlider()
	return nil
}

// showStats animates the home-page headline numbers.
func showStats(ctx context.Context) error {
	fmt.Println("--- Our Numbers Speak ---")
	for _, stat := range animation.Stats {
		c := animation.NewCounter(stat.Value, stat.Duration/4, nil)
		c.Trigger(ctx)

		for c.State() != animation.StateSettled {
			select {
			case <-ctx.Done():
				c.Stop()
				return ctx.Err()
			case <-time.After(20 * time.Millisecond):
			}
		}
		fmt.Printf("  %s%s %s\n", animation.FormatCompact(c.Value()), stat.Suffix, stat.Label)
	}
	return nil
}

// showCalculator quotes premium yearly with a PT pack and tweens the total.
func showCalculator(ctx context.Context) error {
	fmt.Println("--- Membership Calculator ---")

	sel := pricing.Selection{
		PlanID:   "premium",
		Cycle:    pricing.CycleYearly,
		AddOnIDs: []string{"pt-pack"},
	}
	quote := pricing.Calculate(sel)

	stepper := animation.NewStepper(0, quote.Total)
	for {
		value, done := stepper.Next()
		fmt.Printf("\r  Total per year: ₹%d   ", value)
		if done {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(stepper.Interval()):
		}
	}
	fmt.Printf("\n  You save ₹%d\n", quote.DisplaySavings())
	return nil
}

func showReservations(ctx context.Context, cfg *config.Config, store storage.Store) error {
	fmt.Println("--- Class Schedule ---")

	svc := reservation.NewService(store, cfg.KeyPrefix)
	session, day := catalog.ClassByID("mon-1")
	fmt.Printf("  %s %s: %s with %s (%d/%d spots)\n",
		day, session.Time, session.Name, session.Instructor, session.Spots, session.MaxSpots)

	res, err := svc.Reserve(ctx, "mon-1")
	if err != nil {
		if !errors.Is(err, reservation.ErrAlreadyReserved) {
			return err
		}
		fmt.Println("  Already reserved from a previous run")
	} else {
		fmt.Printf("  Reserved %s for %s\n", res.ClassName, res.Day)
	}

	fmt.Printf("  Reserved classes: %d\n", len(svc.List(ctx)))
	return nil
}

func showProgress(ctx context.Context, cfg *config.Config, store storage.Store) error {
	fmt.Println("--- Progress Tracker ---")

	svc := progress.NewService(store, cfg.KeyPrefix)
	rec := svc.Get(ctx)
	if !rec.Started() {
		var err error
		rec, err = svc.SetGoals(ctx, 90, 88, 70)
		if err != nil {
			return err
		}
	}

	rec, err := svc.LogWorkout(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("  Weight: %d%% (now %.1fkg, goal %.1fkg)\n", rec.WeightPercent(), rec.CurrentWeight, rec.GoalWeight)
	fmt.Printf("  Workouts: %d/%d (%d%%), %d day streak\n",
		rec.WorkoutsLogged, rec.WorkoutGoal, rec.WorkoutPercent(), rec.Streak)
	return nil
}

func showBooking(ctx context.Context, cfg *config.Config, store storage.Store) error {
	fmt.Println("--- Free Trial Booking ---")

	svc := booking.NewService(store, cfg.KeyPrefix)
	if trial := svc.CurrentTrial(ctx); trial != nil {
		fmt.Printf("  Upcoming trial %s: %s on %s\n", trial.BookingID, trial.ServiceID, trial.PreferredDate)
		return nil
	}

	trial, err := svc.SubmitTrial(ctx,
		booking.TrialStepOne{Name: "Rahul Sharma", Email: "rahul@example.com", Phone: "9876543210"},
		booking.TrialStepTwo{
			ServiceID:     "yoga",
			PreferredDate: booking.MinBookingDate(time.Now()),
			PreferredTime: "6:00 PM",
		},
	)
	if err != nil {
		return err
	}
	fmt.Printf("  Booked! Reference %s\n", trial.BookingID)

	if sub := svc.CurrentSubscription(ctx); sub == nil {
		if _, err := svc.Subscribe(ctx, "rahul@example.com"); err != nil {
			return err
		}
		fmt.Println("  Subscribed to the newsletter")
	}
	return nil
}

func showSlider() {
	fmt.Println("--- Transformation Gallery ---")

	tr := gallery.Transformations[0]
	rect := gallery.Rect{Left: 0, Width: 600}
	for _, x := range []float64{-50, 150, 300, 450, 700} {
		pct := gallery.Position(rect, gallery.PointerEvent{ClientX: x})
		fmt.Printf("  drag to x=%.0f -> reveal %.0f%%\n", x, pct)
	}
	fmt.Printf("  %s: %s lost in %s\n", tr.Name, tr.WeightLost, tr.Duration)
}
