package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	listingKeyPrefix = "trainings:listing:"
	listingGenKey    = "trainings:listing-gen"
)

var errStaleListing = errors.New("listing generation changed")

// ListingCache keeps serialized public listings in Redis.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

func (c *ListingCache) Get(ctx context.Context, key string) ([]*domain.Event, bool, error) {
	raw, err := c.client.Get(ctx, listingKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get listing %s: %w", key, err)
	}

	var events []*domain.Event
	if err = json.Unmarshal(raw, &events); err != nil {
		return nil, false, fmt.Errorf("decode listing %s: %w", key, err)
	}

	return events, true, nil
}

// Generation returns the current listing generation. Invalidate bumps it.
func (c *ListingCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, listingGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get listing generation: %w", err)
	}
	return gen, nil
}

// Set stores events only if the generation is still gen. A listing loaded
// before a concurrent Invalidate is silently dropped.
func (c *ListingCache) Set(ctx context.Context, key string, events []*domain.Event, gen int64) error {
	if events == nil {
		events = []*domain.Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode listing %s: %w", key, err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, listingGenKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStaleListing
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, listingKeyPrefix+key, raw, c.ttl)
			return nil
		})
		return err
	}, listingGenKey)

	if errors.Is(err, errStaleListing) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("set listing %s: %w", key, err)
	}
	return nil
}

// Invalidate bumps the generation and drops every cached listing.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, listingGenKey).Err(); err != nil {
		return fmt.Errorf("bump listing generation: %w", err)
	}

	var keys []string
	iter := c.client.Scan(ctx, 0, listingKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan listings: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete listings: %w", err)
	}
	return nil
}
