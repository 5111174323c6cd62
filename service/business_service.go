package services

import (
	"fmt"
	"log"
	"time"

	"openhours-server/api/business"
	"openhours-server/config"
	redisdao "openhours-server/dao/redis"
	"openhours-server/models"
	"openhours-server/schedule"
)

// BusinessStatusReport is the full evaluation result handed to the
// presentation layer: status, narration, and the normalized week rendered
// as display hour ranges.
type BusinessStatusReport struct {
	Name        string         `json:"name"`
	Status      string         `json:"status"`
	StatusColor string         `json:"status_color"`
	Narration   string         `json:"narration"`
	Hours       []DayHoursView `json:"hours"`
}

// DayHoursView is one day of the hours listing shown by the accordion UI.
type DayHoursView struct {
	Day     string   `json:"day"`
	IsToday bool     `json:"is_today"`
	Hours   []string `json:"hours"`
}

// BusinessService resolves a business slug to a fresh status evaluation:
// cached document first, fetch on miss, then normalize + evaluate against
// the reference instant. Every call is an independent evaluation cycle over
// an immutable week value — no state is carried between calls.
type BusinessService struct {
	businessDao *redisdao.RedisBusinessDAO
	businessApi business.BusinessAPI
	sources     map[string]string

	normalizer *schedule.Normalizer
	status     *schedule.StatusEngine
	narration  *schedule.NarrationEngine
}

// NewBusinessService constructs a new BusinessService with its dependencies.
func NewBusinessService(
	businessDao *redisdao.RedisBusinessDAO,
	businessApi business.BusinessAPI,
	sources map[string]string,
) *BusinessService {
	return &BusinessService{
		businessDao: businessDao,
		businessApi: businessApi,
		sources:     sources,
		normalizer:  schedule.NewNormalizer(),
		status:      schedule.NewStatusEngine(),
		narration:   schedule.NewNarrationEngine(),
	}
}

// GetBusinessReport evaluates the business's schedule at now. Returns
// (nil, nil) for a slug that is neither cached nor configured.
func (bs *BusinessService) GetBusinessReport(slug string, now time.Time) (*BusinessStatusReport, error) {
	doc, err := bs.loadDocument(slug)
	if err != nil || doc == nil {
		return nil, err
	}

	b, err := models.NewBusinessFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid business document for %s: %w", slug, err)
	}

	week := bs.normalizer.Normalize(b.Week)
	status, current := bs.status.Evaluate(week, now)
	narration := bs.narration.Describe(week, status, current, now)

	return &BusinessStatusReport{
		Name:        b.Name,
		Status:      status.String(),
		StatusColor: status.Color(),
		Narration:   narration,
		Hours:       buildHoursView(week, now),
	}, nil
}

// loadDocument reads the cached document, falling back to a live fetch for
// configured sources. Fetched documents are cached for the next cycle.
func (bs *BusinessService) loadDocument(slug string) (*models.BusinessDocument, error) {
	doc, err := bs.businessDao.GetBusiness(slug)
	if err != nil {
		return nil, err
	}
	if doc != nil {
		return doc, nil
	}

	path, known := bs.sources[slug]
	if !known {
		return nil, nil
	}

	log.Printf("[BusinessService] Cache miss for %s, fetching", slug)
	doc, err = bs.businessApi.FetchBusiness(path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business %s: %w", slug, err)
	}
	if err := bs.businessDao.UpsertBusiness(slug, doc); err != nil {
		log.Printf("[BusinessService] Failed to cache document for %s: %v", slug, err)
	}
	return doc, nil
}

// buildHoursView renders the normalized week as per-day hour range labels.
func buildHoursView(week models.WeekSchedule, now time.Time) []DayHoursView {
	today := models.DayOfWeekFromTime(now.Weekday())

	views := make([]DayHoursView, 0, models.DAYS_IN_WEEK)
	for _, d := range week.Days() {
		views = append(views, DayHoursView{
			Day:     d.Day.String(),
			IsToday: d.Day == today,
			Hours:   hoursForDay(d),
		})
	}
	return views
}

func hoursForDay(d models.DaySchedule) []string {
	if d.IsClosedAllDay() {
		return []string{config.LABEL_CLOSED}
	}
	if d.IsOpenAllDay() {
		return []string{config.LABEL_OPEN_24HRS}
	}
	hours := make([]string, 0, len(d.Shifts))
	for _, s := range d.Shifts {
		hours = append(hours, s.HourRangeLabel())
	}
	return hours
}
