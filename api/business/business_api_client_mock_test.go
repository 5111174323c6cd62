package business

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"openhours-server/config"
	"openhours-server/util"
)

func TestMockFetchBusiness_Success(t *testing.T) {
	// Arrange
	t.Setenv("PROJECT_ROOT", "../..")
	client := NewBusinessApiClientMock()

	expected, err := util.ReadBusinessDocumentFromJSON(config.GetResourcePath(config.BUSINESS_DOCUMENT_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error when reading expected document, got %v", err)
	}

	// Act
	doc, err := client.FetchBusiness(config.BUSINESS_LOCATION_PATH)

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Equal(t, expected, doc, "Documents dont match")
}
