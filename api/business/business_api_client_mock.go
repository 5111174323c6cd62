package business

import (
	"fmt"

	"openhours-server/config"
	"openhours-server/models"
	"openhours-server/util"
)

// BusinessApiClientMock embeds mocked logic for the business api client
type BusinessApiClientMock struct {
}

// NewBusinessApiClientMock creates a new instance of BusinessApiClientMock
func NewBusinessApiClientMock() *BusinessApiClientMock {
	return &BusinessApiClientMock{}
}

// FetchBusiness reads the hours document from the local fixture instead of
// the network. The path argument is ignored.
func (c *BusinessApiClientMock) FetchBusiness(path string) (*models.BusinessDocument, error) {
	response, err := util.ReadBusinessDocumentFromJSON(config.GetResourcePath(config.BUSINESS_DOCUMENT_RESOURCE))
	if err != nil {
		fmt.Println("Could not read business document from json")
		return nil, err
	}
	return response, nil
}
