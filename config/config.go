package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const SERVER_ADDRESS = ":8080"

// Business Refresher config
const BUSINESS_REFRESHER_SCHEDULE_MINUTES = 60

// Business hours endpoint
const BUSINESS_API_ENDPOINT_BASE = "https://purs-demo-bucket-test.s3.us-west-2.amazonaws.com"
const BUSINESS_LOCATION_PATH = "/location.json"
const DEFAULT_BUSINESS_SLUG = "beastro"

// DefaultBusinessSources maps business slugs to their hours document path
// on the business API. The refresher walks this list on every cycle.
var DefaultBusinessSources = map[string]string{
	DEFAULT_BUSINESS_SLUG: BUSINESS_LOCATION_PATH,
}

// Narration / display labels
const NARRATION_OPEN_UNTIL = "Open until"
const NARRATION_OPENS_AGAIN_AT = "Opens again at"
const NARRATION_OPENS = "Opens"
const NARRATION_CLOSED_ALL_WEEK = "Closed indefinitely"
const NARRATION_FALLBACK = "Error, reload!"
const LABEL_OPEN_24HRS = "Open 24hrs"
const LABEL_CLOSED = "Closed"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const BUSINESS_DOCUMENT_RESOURCE = "business.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
