package positionRepo

import (
	"encoding/json"
	"time"

	"shiftflow/models"
	"shiftflow/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	cacheKeyAll    = "positions:all"
	cacheKeyActive = "positions:active"
	cacheTTL       = 5 * time.Minute
)

// CachedPositionRepo wraps a PositionRepository with a Redis read-through
// cache for the two list reads, which run on every page build. Mutations
// drop both cached lists; the TTL catches anything that slips past. Cache
// failures fall back to the wrapped repository.
type CachedPositionRepo struct {
	inner  PositionRepository
	client *redis.Client
}

// NewCachedPositionRepo wraps a repository with the cache Redis client.
func NewCachedPositionRepo(inner PositionRepository, client *redis.Client) PositionRepository {
	return &CachedPositionRepo{inner: inner, client: client}
}

func (r *CachedPositionRepo) cachedList(key string, load func() ([]models.Position, error)) ([]models.Position, error) {
	ctx, cancel := newContext(2 * time.Second)
	data, err := r.client.Get(ctx, key).Result()
	cancel()
	if err == nil {
		var positions []models.Position
		if err := json.Unmarshal([]byte(data), &positions); err == nil {
			return positions, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("Position cache read failed", zap.String("key", key), zap.Error(err))
	}

	positions, err := load()
	if err != nil {
		return nil, err
	}

	if blob, err := json.Marshal(positions); err == nil {
		ctx, cancel := newContext(2 * time.Second)
		defer cancel()
		if err := r.client.Set(ctx, key, blob, cacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Position cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return positions, nil
}

func (r *CachedPositionRepo) invalidate() {
	ctx, cancel := newContext(2 * time.Second)
	defer cancel()
	if err := r.client.Del(ctx, cacheKeyAll, cacheKeyActive).Err(); err != nil {
		utils.GetLogger().Warn("Position cache invalidation failed", zap.Error(err))
	}
}

// GetByID passes through; single-record reads stay uncached.
func (r *CachedPositionRepo) GetByID(id string) (*models.Position, error) {
	return r.inner.GetByID(id)
}

// GetByName passes through.
func (r *CachedPositionRepo) GetByName(name string) (*models.Position, error) {
	return r.inner.GetByName(name)
}

// GetAll retrieves every position ordered by name.
func (r *CachedPositionRepo) GetAll() ([]models.Position, error) {
	return r.cachedList(cacheKeyAll, r.inner.GetAll)
}

// GetActive retrieves active positions ordered by name.
func (r *CachedPositionRepo) GetActive() ([]models.Position, error) {
	return r.cachedList(cacheKeyActive, r.inner.GetActive)
}

// Create inserts a new position record and drops the cached lists.
func (r *CachedPositionRepo) Create(position *models.Position) error {
	if err := r.inner.Create(position); err != nil {
		return err
	}
	r.invalidate()
	return nil
}

// Update modifies an existing position record and drops the cached lists.
func (r *CachedPositionRepo) Update(position *models.Position) error {
	if err := r.inner.Update(position); err != nil {
		return err
	}
	r.invalidate()
	return nil
}

// Delete removes a position record and drops the cached lists.
func (r *CachedPositionRepo) Delete(id string) error {
	if err := r.inner.Delete(id); err != nil {
		return err
	}
	r.invalidate()
	return nil
}
