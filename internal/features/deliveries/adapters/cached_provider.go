package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"logistics-tracker/internal/core/cache"
	"logistics-tracker/internal/core/logger"
	"logistics-tracker/internal/core/metrics"
	"logistics-tracker/internal/features/deliveries/domain"
	"logistics-tracker/internal/features/deliveries/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedProvider decorates a DeliveryProvider with a read-through cache.
// Concurrent fetches of the same key share one upstream call. The shared call
// is detached from every caller and bounded by fetchTimeout; each caller only
// stops waiting when its own context ends.
// Cache failures are logged and the upstream provider is used instead.
type CachedProvider struct {
	next         ports.DeliveryProvider
	cache        cache.Cache
	ttl          time.Duration
	fetchTimeout time.Duration
	metrics      *metrics.Metrics
	group        singleflight.Group
}

// NewCachedProvider wraps next with c. A fetchTimeout of 0 leaves shared
// fetches unbounded. m may be nil.
func NewCachedProvider(next ports.DeliveryProvider, c cache.Cache, ttl, fetchTimeout time.Duration, m *metrics.Metrics) *CachedProvider {
	return &CachedProvider{
		next:         next,
		cache:        c,
		ttl:          ttl,
		fetchTimeout: fetchTimeout,
		metrics:      m,
	}
}

func deliveryKey(id string) string {
	return "delivery:" + id
}

func deliveriesKey(role domain.Role, userID string) string {
	return fmt.Sprintf("deliveries:%s:%s", role, userID)
}

// GetDelivery implements DeliveryProvider.
func (p *CachedProvider) GetDelivery(ctx context.Context, id string) (*domain.Delivery, error) {
	key := deliveryKey(id)

	var cached domain.Delivery
	if p.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	v, err := p.shared(ctx, key, func(fctx context.Context) (any, error) {
		d, err := p.next.GetDelivery(fctx, id)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrDeliveryNotFound, id)
		}
		p.store(fctx, key, d)
		return d, nil
	})
	if err != nil {
		return nil, err
	}

	d := *v.(*domain.Delivery)
	return &d, nil
}

// ListDeliveries implements DeliveryProvider.
func (p *CachedProvider) ListDeliveries(ctx context.Context, role domain.Role, userID string) ([]domain.Delivery, error) {
	key := deliveriesKey(role, userID)

	var cached []domain.Delivery
	if p.lookup(ctx, key, &cached) {
		return cached, nil
	}

	v, err := p.shared(ctx, key, func(fctx context.Context) (any, error) {
		list, err := p.next.ListDeliveries(fctx, role, userID)
		if err != nil {
			return nil, err
		}
		p.store(fctx, key, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}

	shared := v.([]domain.Delivery)
	out := make([]domain.Delivery, len(shared))
	copy(out, shared)
	return out, nil
}

// shared runs fetch once per key among concurrent callers. fetch gets a
// context that keeps ctx values but not its cancellation.
func (p *CachedProvider) shared(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	ch := p.group.DoChan(key, func() (any, error) {
		fctx := context.WithoutCancel(ctx)
		if p.fetchTimeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(fctx, p.fetchTimeout)
			defer cancel()
		}
		return fetch(fctx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// lookup reports whether key was found and decoded into out.
func (p *CachedProvider) lookup(ctx context.Context, key string, out any) bool {
	data, err := p.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			p.metrics.CacheLookup(metrics.CacheMiss)
			return false
		}
		p.metrics.CacheLookup(metrics.CacheError)
		logger.Named("cache").Warn("Cache read failed, falling back to backend",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		p.metrics.CacheLookup(metrics.CacheError)
		logger.Named("cache").Warn("Cached value is corrupt, falling back to backend",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}

	p.metrics.CacheLookup(metrics.CacheHit)
	return true
}

func (p *CachedProvider) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Named("cache").Warn("Failed to encode value for cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		logger.Named("cache").Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
