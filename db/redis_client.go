package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key is absent, so callers can
// tell a cache miss from a transport failure.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the methods available in the redis clients
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	Ping() error
	GetContext() context.Context
}
