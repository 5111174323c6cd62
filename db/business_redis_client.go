package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// BusinessRedisClient struct holds the Redis client and context
type BusinessRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewBusinessRedisClient initializes a new Redis client with default options
func NewBusinessRedisClient(ctx context.Context, client *redis.Client) *BusinessRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &BusinessRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *BusinessRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *BusinessRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Keys returns all keys matching the given pattern
func (r *BusinessRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key from Redis
func (r *BusinessRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *BusinessRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *BusinessRedisClient) GetContext() context.Context {
	return r.ctx
}
