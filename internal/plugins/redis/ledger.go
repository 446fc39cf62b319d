package redis

import (
	"context"
	"encoding/json"
	"roomgate/internal/core/contracts"
	"roomgate/internal/core/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSubscriptionLedger appends every subscription event to a capped stream
// for downstream consumers and keeps one ZSET per room channel holding the
// subscribed connection ids scored by subscription time.
type RedisSubscriptionLedger struct {
	rdb    *redis.Client
	stream string
	maxLen int64
}

var _ contracts.SubscriptionLedger = (*RedisSubscriptionLedger)(nil)

func NewRedisSubscriptionLedger(rdb *redis.Client, stream string, maxLen int64) *RedisSubscriptionLedger {
	return &RedisSubscriptionLedger{rdb: rdb, stream: stream, maxLen: maxLen}
}

func subscribersKey(channel string) string {
	return "subscribers:" + channel
}

func (l *RedisSubscriptionLedger) Record(ctx context.Context, evt domain.SubscriptionEvent) error {
	raw, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, err = l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAdd(ctx, l.xadd(raw))
		pipe.ZAdd(ctx, subscribersKey(evt.Channel()), redis.Z{
			Score:  float64(at(evt).Unix()),
			Member: evt.ConnectionID,
		})
		return nil
	})
	return err
}

func (l *RedisSubscriptionLedger) Release(ctx context.Context, evt domain.SubscriptionEvent) error {
	raw, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, err = l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAdd(ctx, l.xadd(raw))
		pipe.ZRem(ctx, subscribersKey(evt.Channel()), evt.ConnectionID)
		return nil
	})
	return err
}

func (l *RedisSubscriptionLedger) Subscribers(ctx context.Context, channel string) ([]string, error) {
	return l.rdb.ZRange(ctx, subscribersKey(channel), 0, -1).Result()
}

func (l *RedisSubscriptionLedger) xadd(raw []byte) *redis.XAddArgs {
	return &redis.XAddArgs{
		Stream: l.stream,
		MaxLen: l.maxLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{"data": raw},
	}
}

func at(evt domain.SubscriptionEvent) time.Time {
	if evt.At == 0 {
		return time.Now()
	}
	return time.UnixMilli(evt.At)
}
