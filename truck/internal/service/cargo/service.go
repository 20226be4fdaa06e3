package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/coffee-truck/platform/logger"
	"github.com/you-humble/coffee-truck/truck/internal/model"
)

type service struct {
	mu        sync.RWMutex
	maxVolume decimal.Decimal
	used      decimal.Decimal
	hold      []model.Coffee
}

func NewCargoService(maxVolume float64) (*service, error) {
	const op = "cargo.service.New"

	if !(maxVolume > 0) || math.IsInf(maxVolume, 0) {
		return nil, fmt.Errorf("%s: %w: %v", op, model.ErrInvalidConfiguration, maxVolume)
	}

	return &service{
		maxVolume: decimal.NewFromFloat(maxVolume),
		used:      decimal.Zero,
		hold:      make([]model.Coffee, 0),
	}, nil
}

// Load appends c to the hold when its weight still fits. A rejected item leaves
// the hold untouched.
func (s *service) Load(ctx context.Context, c model.Coffee) error {
	const op = "cargo.service.Load"
	log := logger.With(
		logger.String("coffee_id", c.ID.String()),
		logger.String("name", c.Name),
		logger.Float64("weight", c.Weight),
	)

	if !(c.Weight > 0) || math.IsInf(c.Weight, 0) {
		log.Error(ctx, "validation: non-positive weight")
		return fmt.Errorf("%s: %w", op, errors.Join(model.ErrInvalidCoffee, errors.New("weight must be positive")))
	}
	weight := decimal.NewFromFloat(c.Weight)

	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.used.Add(weight)
	if total.GreaterThan(s.maxVolume) {
		log.Warn(ctx, "capacity exceeded",
			logger.String("used", s.used.String()),
			logger.String("max_volume", s.maxVolume.String()),
		)
		return fmt.Errorf("%s: %w: %s + %s > %s",
			op, model.ErrCapacityExceeded, s.used, weight, s.maxVolume)
	}

	s.hold = append(s.hold, c)
	s.used = total

	log.Debug(ctx, "coffee loaded", logger.String("used", s.used.String()))
	return nil
}

// LoadBatch loads coffees in order and stops at the first rejected item.
// It returns how many items made it into the truck.
func (s *service) LoadBatch(ctx context.Context, coffees []model.Coffee) (int, error) {
	const op = "cargo.service.LoadBatch"

	for i, c := range coffees {
		if err := ctx.Err(); err != nil {
			return i, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.Load(ctx, c); err != nil {
			logger.Warn(ctx, "batch load stopped",
				logger.Int("loaded", i),
				logger.Int("total", len(coffees)),
			)
			return i, fmt.Errorf("%s: %q: %w", op, c.Name, err)
		}
	}

	logger.Info(ctx, "batch loaded", logger.Int("loaded", len(coffees)))
	return len(coffees), nil
}

// SortByValueRatio orders the hold by ascending price per kilogram. Equal
// ratios keep their previous relative order.
func (s *service) SortByValueRatio(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slices.SortStableFunc(s.hold, func(a, b model.Coffee) int {
		return cmp.Compare(a.ValueRatio(), b.ValueRatio())
	})

	logger.Debug(ctx, "cargo sorted by value ratio", logger.Int("items", len(s.hold)))
}

func (s *service) FilterByQuality(ctx context.Context, r model.QualityRange) ([]model.Coffee, error) {
	const op = "cargo.service.FilterByQuality"

	if err := r.Validate(); err != nil {
		logger.Warn(ctx, "validation: quality range",
			logger.Float64("min", r.Min),
			logger.Float64("max", r.Max),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.hold, func(c model.Coffee, _ int) bool {
		return r.Contains(c)
	}), nil
}

func (s *service) List(_ context.Context) []model.Coffee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.hold)
}

func (s *service) Summary(_ context.Context) model.LoadSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.LoadSummary{
		Items:     len(s.hold),
		UsedKg:    s.used.InexactFloat64(),
		MaxVolume: s.maxVolume.InexactFloat64(),
	}
}
