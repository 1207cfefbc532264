package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vere-app/vere/internal/domain/analytics"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

// redisViewEventRepo keeps the view log as one Redis list per profile
// and the save counter as a plain integer key. Kafka carries the same
// events out for downstream consumers; this store only serves the
// summary endpoint and the professional renderers.
type redisViewEventRepo struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisViewEventRepo(rdb *redis.Client, logger logger.Logger) analytics.Repository {
	return &redisViewEventRepo{rdb: rdb, logger: logger}
}

func viewsKey(profileID string) string { return "views:" + profileID }
func savesKey(profileID string) string { return "saves:" + profileID }

func (r *redisViewEventRepo) Append(ctx context.Context, ev analytics.ViewEvent) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return apperror.NewInternal("failed to marshal view event", err)
	}
	if err := r.rdb.RPush(ctx, viewsKey(ev.ProfileID), raw).Err(); err != nil {
		return apperror.NewInternal("failed to append view event", err)
	}
	return nil
}

func (r *redisViewEventRepo) ListByProfile(ctx context.Context, profileID string) ([]analytics.ViewEvent, error) {
	raws, err := r.rdb.LRange(ctx, viewsKey(profileID), 0, -1).Result()
	if err != nil {
		return nil, apperror.NewInternal("failed to read view log", err)
	}

	events := make([]analytics.ViewEvent, 0, len(raws))
	for _, raw := range raws {
		var ev analytics.ViewEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			r.logger.Warn("Skipping malformed view event", zap.String("profile_id", profileID), zap.Error(err))
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func (r *redisViewEventRepo) AddSave(ctx context.Context, profileID string) error {
	if err := r.rdb.Incr(ctx, savesKey(profileID)).Err(); err != nil {
		return apperror.NewInternal("failed to increment saves", err)
	}
	return nil
}

func (r *redisViewEventRepo) CountSaves(ctx context.Context, profileID string) (int, error) {
	count, err := r.rdb.Get(ctx, savesKey(profileID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, apperror.NewInternal("failed to count saves", err)
	}
	return count, nil
}
