package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"openhours-server/db"
	"openhours-server/models"
)

const BUSINESS_DOC_KEY_FORMAT = "business_doc_v1:%s"
const BUSINESS_DOC_KEY_PATTERN = "business_doc_v1:*"
const BUSINESS_DOC_KEY_PREFIX = "business_doc_v1:"

// RedisBusinessDAO handles cached business hours documents using Redis.
type RedisBusinessDAO struct {
	client db.RedisClient
}

// NewRedisBusinessDAO initializes a RedisBusinessDAO with the Redis client.
func NewRedisBusinessDAO(client db.RedisClient) *RedisBusinessDAO {
	return &RedisBusinessDAO{client: client}
}

// UpsertBusiness stores the raw hours document for a business slug.
func (dao *RedisBusinessDAO) UpsertBusiness(slug string, doc *models.BusinessDocument) error {
	key := fmt.Sprintf(BUSINESS_DOC_KEY_FORMAT, slug)
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal business document for %s: %w", slug, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set business document in redis: %w", err)
	}
	return nil
}

// GetBusiness retrieves the cached hours document for a business slug.
// A cache miss returns (nil, nil).
func (dao *RedisBusinessDAO) GetBusiness(slug string) (*models.BusinessDocument, error) {
	key := fmt.Sprintf(BUSINESS_DOC_KEY_FORMAT, slug)
	str, err := dao.client.Get(key)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business document from redis: %w", err)
	}
	var doc models.BusinessDocument
	if err := json.Unmarshal([]byte(str), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business document JSON: %w", err)
	}
	return &doc, nil
}

// ListBusinessSlugs returns the slugs of all cached business documents.
func (dao *RedisBusinessDAO) ListBusinessSlugs() ([]string, error) {
	keys, err := dao.client.Keys(BUSINESS_DOC_KEY_PATTERN)
	if err != nil {
		return nil, fmt.Errorf("failed to list business document keys: %w", err)
	}

	slugs := make([]string, 0, len(keys))
	for _, k := range keys {
		slugs = append(slugs, strings.TrimPrefix(k, BUSINESS_DOC_KEY_PREFIX))
	}
	return slugs, nil
}

// DeleteBusiness evicts the cached document for a business slug.
func (dao *RedisBusinessDAO) DeleteBusiness(slug string) error {
	key := fmt.Sprintf(BUSINESS_DOC_KEY_FORMAT, slug)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete business document key %s: %w", key, err)
	}
	log.Printf("[RedisBusinessDAO] Deleted cached document for %s", slug)
	return nil
}
