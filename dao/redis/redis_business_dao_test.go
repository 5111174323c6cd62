package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"openhours-server/db"
	"openhours-server/models"
)

func testDocument() *models.BusinessDocument {
	return &models.BusinessDocument{
		LocationName: "Test Cafe",
		Hours: []models.HourRange{
			{DayOfWeek: "MON", StartLocalTime: "09:00:00", EndLocalTime: "17:00:00"},
			{DayOfWeek: "FRI", StartLocalTime: "22:00:00", EndLocalTime: "24:00:00"},
		},
	}
}

func TestRedisBusinessDAO_UpsertAndGet(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisBusinessDAO(mockClient)

	// Act
	err := dao.UpsertBusiness("test-cafe", testDocument())

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	stored, err := dao.GetBusiness("test-cafe")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, testDocument(), stored, "Stored document should round-trip")
}

func TestRedisBusinessDAO_GetBusiness_CacheMiss(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisBusinessDAO(mockClient)

	// Act
	doc, err := dao.GetBusiness("unknown")

	// Assert: a miss is not an error.
	if err != nil {
		t.Fatalf("Expected no error on cache miss, got %v", err)
	}
	if doc != nil {
		t.Errorf("Expected nil document on cache miss, got %v", doc)
	}
}

func TestRedisBusinessDAO_ListBusinessSlugs(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisBusinessDAO(mockClient)

	_ = dao.UpsertBusiness("cafe-one", testDocument())
	_ = dao.UpsertBusiness("cafe-two", testDocument())

	// Act
	slugs, err := dao.ListBusinessSlugs()

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.ElementsMatch(t, []string{"cafe-one", "cafe-two"}, slugs)
}

func TestRedisBusinessDAO_DeleteBusiness(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisBusinessDAO(mockClient)
	_ = dao.UpsertBusiness("test-cafe", testDocument())

	// Act
	err := dao.DeleteBusiness("test-cafe")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	doc, err := dao.GetBusiness("test-cafe")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if doc != nil {
		t.Errorf("Expected the document to be gone, got %v", doc)
	}
}
