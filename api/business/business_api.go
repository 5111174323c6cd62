package business

import (
	"openhours-server/models"
)

// BusinessAPI defines the interface for fetching business hours documents.
// The fetch is a single request/response with success or failure — no
// partial results, no retries here.
type BusinessAPI interface {
	FetchBusiness(path string) (*models.BusinessDocument, error)
}
