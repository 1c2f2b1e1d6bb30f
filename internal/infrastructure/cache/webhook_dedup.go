package cache

import (
	"context"
	"log"
	"time"

	"pandit_booking/internal/config"

	"github.com/redis/go-redis/v9"
)

const webhookKeyPrefix = "webhook:razorpay:"

// ConnectRedis returns a client for cfg.Addr after a successful ping.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	log.Printf("[cache][redis] connected addr=%s db=%d", cfg.Addr, cfg.DB)
	return client, nil
}

type keyStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// WebhookDeduplicator remembers provider event ids for ttl so a redelivered
// event is acknowledged without being processed twice.
type WebhookDeduplicator struct {
	store keyStore
	ttl   time.Duration
}

func NewWebhookDeduplicator(store keyStore, ttl time.Duration) *WebhookDeduplicator {
	return &WebhookDeduplicator{store: store, ttl: ttl}
}

// Claim reports whether eventID was seen for the first time.
func (d *WebhookDeduplicator) Claim(ctx context.Context, eventID string) (bool, error) {
	first, err := d.store.SetNX(ctx, webhookKeyPrefix+eventID, time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
	if err != nil {
		log.Printf("[cache][webhook] claim failed event_id=%s err=%v", eventID, err)
		return false, err
	}
	return first, nil
}

// Forget releases a claim so the provider's retry is processed.
func (d *WebhookDeduplicator) Forget(ctx context.Context, eventID string) error {
	if err := d.store.Del(ctx, webhookKeyPrefix+eventID).Err(); err != nil {
		log.Printf("[cache][webhook] forget failed event_id=%s err=%v", eventID, err)
		return err
	}
	return nil
}
