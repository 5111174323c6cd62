package services

import (
	"log"
	"time"

	"openhours-server/api/business"
	redisdao "openhours-server/dao/redis"
)

// BusinessRefresherService periodically refetches business hours documents
// into the cache. Each cycle produces fresh documents for every configured
// source; there is no incremental mutation of cached state.
type BusinessRefresherService struct {
	businessDao *redisdao.RedisBusinessDAO
	businessApi business.BusinessAPI
	sources     map[string]string
}

// NewBusinessRefresherService constructs a new refresher with dependencies.
func NewBusinessRefresherService(
	businessDao *redisdao.RedisBusinessDAO,
	businessApi business.BusinessAPI,
	sources map[string]string,
) *BusinessRefresherService {
	return &BusinessRefresherService{
		businessDao: businessDao,
		businessApi: businessApi,
		sources:     sources,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (br *BusinessRefresherService) StartPeriodicJob(interval time.Duration) {
	go br.startPeriodicJob(interval)
}

func (br *BusinessRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[BusinessRefresherService] Running periodic business refresher job.")
		if err := br.RefreshBusinessData(); err != nil {
			log.Printf("[BusinessRefresherService] RefreshBusinessData returned error: %v", err)
		} else {
			log.Println("[BusinessRefresherService] RefreshBusinessData completed successfully.")
		}
	}
}

// RefreshBusinessData fetches every configured source and upserts the
// result. A failed source is logged and skipped; the last error is
// returned so the caller can tell the cycle was not clean.
func (br *BusinessRefresherService) RefreshBusinessData() error {
	log.Printf("[BusinessRefresherService] Refreshing %d business sources", len(br.sources))

	var lastErr error
	for slug, path := range br.sources {
		doc, err := br.businessApi.FetchBusiness(path)
		if err != nil {
			log.Printf("[BusinessRefresherService] Failed to fetch %s: %v", slug, err)
			lastErr = err
			continue
		}
		if err := br.businessDao.UpsertBusiness(slug, doc); err != nil {
			log.Printf("[BusinessRefresherService] Failed to upsert %s: %v", slug, err)
			lastErr = err
			continue
		}
		log.Printf("[BusinessRefresherService] Refreshed %s (%s)", slug, doc.LocationName)
	}
	return lastErr
}
