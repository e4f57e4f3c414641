package catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/fastygo/catalog/domain"
	"github.com/fastygo/catalog/pkg/logger"
	"github.com/fastygo/catalog/pkg/shortid"
	"github.com/fastygo/catalog/repository"
)

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	NewID() string
}

// Option customizes a UseCase.
type Option func(*UseCase)

// WithIDGenerator replaces the default short id generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(uc *UseCase) {
		if ids != nil {
			uc.ids = ids
		}
	}
}

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// UseCase implements the restaurant and dish operations on top of a
// snapshot store.
//
// Mutations hold the write lock across load, compute and save, so two
// concurrent writers can no longer overwrite each other's snapshot.
// Listings take the read lock and wait for in-flight writes.
type UseCase struct {
	store  repository.SnapshotStore
	ids    IDGenerator
	now    func() time.Time
	logger *zap.Logger

	mu sync.RWMutex
}

func New(store repository.SnapshotStore, logger *zap.Logger, opts ...Option) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	uc := &UseCase{
		store:  store,
		ids:    shortid.Generator{},
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// CreateRestaurant stores a new restaurant and returns it.
func (uc *UseCase) CreateRestaurant(ctx context.Context, in RestaurantInput) (*domain.Restaurant, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := checkStruct(in); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	restaurant := domain.Restaurant{
		ID:        uc.ids.NewID(),
		Name:      in.Name,
		CreatedAt: domain.NextCreatedAt(uc.now(), snapshot.LatestCreatedAt()),
	}
	snapshot.Restaurants = append(snapshot.Restaurants, restaurant)

	if err := uc.save(ctx, snapshot); err != nil {
		return nil, err
	}

	logger.WithRequestID(ctx, uc.logger).Debug("restaurant created", zap.String("restaurant_id", restaurant.ID))
	return &restaurant, nil
}

// ListRestaurants returns every restaurant, newest first.
func (uc *UseCase) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	snapshot, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	restaurants := slices.Clone(snapshot.Restaurants)
	slices.SortStableFunc(restaurants, func(a, b domain.Restaurant) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return restaurants, nil
}

// AddDish attaches a new dish to an existing restaurant and returns its
// projection.
func (uc *UseCase) AddDish(ctx context.Context, restaurantID string, in DishInput) (*domain.DishView, error) {
	restaurantID, err := ValidateID("restaurantId", restaurantID)
	if err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := checkStruct(in); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	owner, ok := snapshot.FindRestaurant(restaurantID)
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}

	dish := domain.Dish{
		ID:           uc.ids.NewID(),
		Name:         in.Name,
		Price:        in.Price,
		RestaurantID: owner.ID,
		CreatedAt:    domain.NextCreatedAt(uc.now(), snapshot.LatestCreatedAt()),
	}
	snapshot.Dishes = append(snapshot.Dishes, dish)

	if err := uc.save(ctx, snapshot); err != nil {
		return nil, err
	}

	logger.WithRequestID(ctx, uc.logger).Debug("dish added",
		zap.String("restaurant_id", owner.ID),
		zap.String("dish_id", dish.ID))

	view := dish.View(owner)
	return &view, nil
}

// ListDishes returns one page of a restaurant's dishes, newest first.
func (uc *UseCase) ListDishes(ctx context.Context, restaurantID string, page int) (*domain.DishPage, error) {
	restaurantID, err := ValidateID("restaurant", restaurantID)
	if err != nil {
		return nil, err
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	snapshot, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	owner, ok := snapshot.FindRestaurant(restaurantID)
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}

	dishes := lo.Filter(snapshot.Dishes, func(d domain.Dish, _ int) bool {
		return d.RestaurantID == owner.ID
	})
	slices.SortStableFunc(dishes, func(a, b domain.Dish) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})

	info, start, end := domain.Paginate(len(dishes), page, domain.DishPageSize)
	data := lo.Map(dishes[start:end], func(d domain.Dish, _ int) domain.DishView {
		return d.View(owner)
	})

	return &domain.DishPage{Info: info, Data: data}, nil
}

func (uc *UseCase) load(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("load snapshot: store returned no snapshot")
	}
	snapshot.Normalize()
	return snapshot, nil
}

func (uc *UseCase) save(ctx context.Context, snapshot *domain.Snapshot) error {
	if err := uc.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
