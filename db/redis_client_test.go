package db_test

import (
	"context"
	"errors"
	"testing"

	"openhours-server/db"
)

func TestMockRedisClient_SetAndGet(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	key := "test-key"
	value := "test-value"

	// Act
	if err := client.Set(key, value); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	retrieved, err := client.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	// Assert
	if retrieved != value {
		t.Errorf("Expected %s, got %s", value, retrieved)
	}
}

func TestMockRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_, err := client.Get("absent")

	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestMockRedisClient_KeysMatchesPrefixPattern(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	_ = client.Set("doc_v1:a", "1")
	_ = client.Set("doc_v1:b", "2")
	_ = client.Set("other:c", "3")

	keys, err := client.Keys("doc_v1:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}

	if len(keys) != 2 {
		t.Errorf("Expected 2 keys, got %d: %v", len(keys), keys)
	}
}

func TestMockRedisClient_Del(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	_ = client.Set("key", "value")

	if err := client.Del("key"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}

	if _, err := client.Get("key"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("Expected the key to be gone, got %v", err)
	}
}
