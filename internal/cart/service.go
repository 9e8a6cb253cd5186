package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	pkgerrors "github.com/dailyneed/storefront-backend/pkg/errors"
	"github.com/dailyneed/storefront-backend/pkg/logger"
	"github.com/dailyneed/storefront-backend/pkg/redis"
)

// Service exposes the cart quantity operations.
//
// The stored mapping never holds a zero quantity: reaching zero removes the
// entry, and absence reads as zero. Add is deliberately idempotent while
// Increase creates missing entries, matching the storefront's add-button and
// stepper behavior.
type Service interface {
	Add(ctx context.Context, productID int) (*CartDTO, error)
	Increase(ctx context.Context, productID int) (*CartDTO, error)
	Decrease(ctx context.Context, productID int) (*CartDTO, error)
	Get(ctx context.Context) (*CartDTO, error)
	Restore(ctx context.Context) error
}

// Mirror is the durable key-value store the cart is mirrored to. Writes are
// best effort: failures are logged and the in-memory cart stays authoritative.
type Mirror interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey() string
}

type productFinder interface {
	Contains(productID int) bool
}

// ServiceParams wires the dependencies for the cart service.
type ServiceParams struct {
	Mirror   Mirror
	Products productFinder
	Logger   *logger.Logger
}

type service struct {
	mirror   Mirror
	products productFinder
	logg     *logger.Logger

	mu         sync.Mutex
	quantities map[int]int
	order      []int
}

// NewService constructs a cart service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Mirror == nil {
		return nil, fmt.Errorf("cart mirror required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product finder required")
	}
	return &service{
		mirror:     params.Mirror,
		products:   params.Products,
		logg:       params.Logger,
		quantities: make(map[int]int),
	}, nil
}

// Add creates an entry at quantity 1 for an absent product. Calling it again
// for the same product changes nothing.
func (s *service) Add(ctx context.Context, productID int) (*CartDTO, error) {
	if !s.products.Contains(productID) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	s.mu.Lock()
	if _, ok := s.quantities[productID]; !ok {
		s.quantities[productID] = 1
		s.order = append(s.order, productID)
	}
	dto := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx)
	return dto, nil
}

// Increase bumps the quantity by one, creating the entry at quantity 1 when
// the product is not in the cart yet.
func (s *service) Increase(ctx context.Context, productID int) (*CartDTO, error) {
	if !s.products.Contains(productID) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	s.mu.Lock()
	if _, ok := s.quantities[productID]; !ok {
		s.order = append(s.order, productID)
	}
	s.quantities[productID]++
	dto := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx)
	return dto, nil
}

// Decrease lowers the quantity by one and removes the entry once it would
// reach zero. Decreasing an absent product is a no-op.
func (s *service) Decrease(ctx context.Context, productID int) (*CartDTO, error) {
	s.mu.Lock()
	if qty, ok := s.quantities[productID]; ok {
		if qty > 1 {
			s.quantities[productID] = qty - 1
		} else {
			delete(s.quantities, productID)
			s.removeFromOrderLocked(productID)
		}
	}
	dto := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx)
	return dto, nil
}

// Get returns the current cart contents in insertion order.
func (s *service) Get(ctx context.Context) (*CartDTO, error) {
	s.mu.Lock()
	dto := s.snapshotLocked()
	s.mu.Unlock()
	return dto, nil
}

// Restore replaces the in-memory cart with the mirrored copy. A missing key
// or an undecodable payload leaves the cart empty without failing boot.
func (s *service) Restore(ctx context.Context) error {
	raw, err := s.mirror.Get(ctx, s.mirror.CartKey())
	if err != nil {
		if redis.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("reading cart mirror: %w", err)
	}

	var items []ItemDTO
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart mirror payload is not decodable, starting empty")
		}
		return nil
	}

	s.mu.Lock()
	s.quantities = make(map[int]int, len(items))
	s.order = s.order[:0]
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if _, ok := s.quantities[item.ProductID]; ok {
			continue
		}
		s.quantities[item.ProductID] = item.Quantity
		s.order = append(s.order, item.ProductID)
	}
	s.mu.Unlock()
	return nil
}

// snapshotLocked builds the response DTO. Callers must hold s.mu.
func (s *service) snapshotLocked() *CartDTO {
	items := make([]ItemDTO, 0, len(s.order))
	total := 0
	for _, id := range s.order {
		qty := s.quantities[id]
		items = append(items, ItemDTO{ProductID: id, Quantity: qty})
		total += qty
	}
	return &CartDTO{Items: items, TotalItems: total}
}

func (s *service) removeFromOrderLocked(productID int) {
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// persist mirrors the current cart. Mirror failures are swallowed so the
// in-memory cart keeps working when the store is unreachable.
func (s *service) persist(ctx context.Context) {
	s.mu.Lock()
	dto := s.snapshotLocked()
	s.mu.Unlock()

	payload, err := json.Marshal(dto.Items)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "encoding cart mirror payload")
		}
		return
	}
	if err := s.mirror.Set(ctx, s.mirror.CartKey(), string(payload), 0); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "writing cart mirror")
		}
	}
}
