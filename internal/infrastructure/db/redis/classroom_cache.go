package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

const (
	classroomListKey = "classrooms:all"
	classroomListTTL = 5 * time.Minute
)

// ClassroomCache caches the full room catalog under a single key. Cache
// failures are logged and treated as misses; the catalog read falls back to
// the database.
type ClassroomCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewClassroomCache(client *redis.Client, logger zerolog.Logger) *ClassroomCache {
	return &ClassroomCache{client: client, logger: logger}
}

func (c *ClassroomCache) GetList(ctx context.Context) ([]domain.Classroom, bool) {
	raw, err := c.client.Get(ctx, classroomListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("classroom cache read failed")
		}
		return nil, false
	}

	var rooms []domain.Classroom
	if err := json.Unmarshal(raw, &rooms); err != nil {
		c.logger.Warn().Err(err).Msg("classroom cache entry corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return rooms, true
}

func (c *ClassroomCache) SetList(ctx context.Context, rooms []domain.Classroom) {
	raw, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, classroomListKey, raw, classroomListTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("classroom cache write failed")
	}
}

func (c *ClassroomCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, classroomListKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("classroom cache invalidation failed")
	}
}
