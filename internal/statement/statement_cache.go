package statement

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// reportCache keeps rendered JSON statements for a short time. A nil
// client or a disabled cache always loads.
type reportCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	enabled bool
	logger  *zap.Logger
}

func CacheKey(companyID, kind string, p Params) string {
	return strings.Join([]string{
		"statements", companyID, kind,
		p.WorkerID, p.ProjectID, p.SupplierID,
		strings.TrimSpace(p.From), strings.TrimSpace(p.To),
	}, ":")
}

func cached[T any](ctx context.Context, c *reportCache, key string, load func() (T, error)) (T, error) {
	if c == nil || !c.enabled || c.rdb == nil {
		return load()
	}

	if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var v T
		if json.Unmarshal([]byte(raw), &v) == nil {
			return v, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if data, err := json.Marshal(v); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("cache statement failed", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}
