package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/zeu5/player-selector/types"
)

// RedisStore pushes every trace to the list <prefix>:<experiment>:<run>
// and keeps the returns in the sorted set <prefix>:<experiment>:returns
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ TraceStore = &RedisStore{}

func NewRedisStore(addr, prefix string) *RedisStore {
	return NewRedisStoreWithClient(redis.NewClient(&redis.Options{
		Addr: addr,
	}), prefix)
}

func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) TracesKey(experiment string, run int) string {
	return r.prefix + ":" + experiment + ":" + strconv.Itoa(run)
}

func (r *RedisStore) ReturnsKey(experiment string) string {
	return r.prefix + ":" + experiment + ":returns"
}

// Ping checks the connection
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Record(ctx context.Context, experiment string, run, episode int, trace *types.Trace) error {
	record := newRecord(experiment, run, episode, trace)
	bs, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, r.TracesKey(experiment, run), bs)
		pipe.ZAdd(ctx, r.ReturnsKey(experiment), redis.Z{
			Score:  record.Return,
			Member: strconv.Itoa(run) + ":" + strconv.Itoa(episode),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis record %s: %w", r.TracesKey(experiment, run), err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
