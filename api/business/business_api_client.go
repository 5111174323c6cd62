package business

import (
	"openhours-server/api"
	"openhours-server/models"
)

// BusinessApiClient embeds the common HTTPClient
type BusinessApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewBusinessApiClient creates a new instance of BusinessApiClient
func NewBusinessApiClient(httpClient *api.HTTPClient) *BusinessApiClient {
	return &BusinessApiClient{
		HTTPClient: httpClient,
	}
}

// FetchBusiness retrieves the hours document at the given path and decodes
// it into a BusinessDocument.
func (c *BusinessApiClient) FetchBusiness(path string) (*models.BusinessDocument, error) {
	var response models.BusinessDocument
	err := c.Request("GET", path, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
