package util

import (
	"encoding/json"
	"fmt"
	"os"

	"openhours-server/models"
)

// ReadBusinessDocumentFromJSON loads a BusinessDocument from JSON on disk.
func ReadBusinessDocumentFromJSON(filePath string) (*models.BusinessDocument, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var doc models.BusinessDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal BusinessDocument: %w", err)
	}
	return &doc, nil
}

// PrintBusinessDocumentPartially prints key fields of a BusinessDocument.
func PrintBusinessDocumentPartially(doc *models.BusinessDocument) {
	fmt.Printf("Location: %s\n", doc.LocationName)
	fmt.Printf("Hour ranges: %d\n", len(doc.Hours))
	if len(doc.Hours) > 0 {
		h := doc.Hours[0]
		fmt.Printf("First range: %s %s-%s\n", h.DayOfWeek, h.StartLocalTime, h.EndLocalTime)
	}
}
