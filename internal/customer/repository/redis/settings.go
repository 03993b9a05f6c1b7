package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/internal/model"
)

const settingsTTL = 10 * time.Minute

func settingsKey(tenantID, customerID string) string {
	return fmt.Sprintf("customer_settings:%s:%s", tenantID, customerID)
}

func (r *implCacheRepository) GetSettings(ctx context.Context, tenantID, customerID string) (model.CustomerSettings, error) {
	data, err := r.redis.GetClient().Get(ctx, settingsKey(tenantID, customerID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.CustomerSettings{}, repository.ErrCacheMiss
		}
		return model.CustomerSettings{}, err
	}

	var s model.CustomerSettings
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		r.l.Errorf(ctx, "customer.repository.redis.GetSettings: unmarshal failed: %v", err)
		return model.CustomerSettings{}, repository.ErrCacheMiss
	}
	return s, nil
}

func (r *implCacheRepository) SaveSettings(ctx context.Context, settings model.CustomerSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	key := settingsKey(settings.TenantID, settings.CustomerID)
	if err := r.redis.GetClient().Set(ctx, key, data, settingsTTL).Err(); err != nil {
		r.l.Errorf(ctx, "customer.repository.redis.SaveSettings: save failed: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) InvalidateSettings(ctx context.Context, tenantID, customerID string) error {
	if err := r.redis.GetClient().Del(ctx, settingsKey(tenantID, customerID)).Err(); err != nil {
		r.l.Errorf(ctx, "customer.repository.redis.InvalidateSettings: delete failed: %v", err)
		return err
	}
	return nil
}
