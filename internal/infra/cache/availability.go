package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "avail"

// AvailabilityCache stores computed day availability in Redis with a
// short TTL. It is strictly best-effort: read and write failures degrade
// to recomputation, never to request failures.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func (c *AvailabilityCache) GetDay(ctx context.Context, salonID, serviceID uuid.UUID, employeeID *uuid.UUID, date string) (*queries.DayAvailabilityView, bool) {
	raw, err := c.client.Get(ctx, dayKey(salonID, serviceID, employeeID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("availability cache read failed", "error", err)
		}
		return nil, false
	}

	var view queries.DayAvailabilityView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.Debug("availability cache entry corrupt", "error", err)
		return nil, false
	}
	return &view, true
}

func (c *AvailabilityCache) SetDay(ctx context.Context, view *queries.DayAvailabilityView) {
	raw, err := json.Marshal(view)
	if err != nil {
		slog.Debug("availability cache marshal failed", "error", err)
		return
	}
	key := dayKey(view.SalonID, view.ServiceID, view.EmployeeID, view.Date)
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Debug("availability cache write failed", "error", err)
	}
}

// InvalidateSalon drops every cached day of the salon. SCAN keeps Redis
// responsive on large keyspaces where KEYS would block.
func (c *AvailabilityCache) InvalidateSalon(ctx context.Context, salonID uuid.UUID) error {
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, salonID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return infra.WrapRepoErr("failed to delete cached availability", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return infra.WrapRepoErr("failed to scan cached availability", err)
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return infra.WrapRepoErr("failed to delete cached availability", err)
		}
	}
	return nil
}

func dayKey(salonID, serviceID uuid.UUID, employeeID *uuid.UUID, date string) string {
	emp := "any"
	if employeeID != nil {
		emp = employeeID.String()
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s", keyPrefix, salonID, serviceID, emp, date)
}
