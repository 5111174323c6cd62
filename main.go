package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"openhours-server/config"
	"openhours-server/di"
	"openhours-server/models"
	"openhours-server/schedule"
	"openhours-server/util"
)

// plotDefaultBusinessWeek renders the cached default business's weekly hours
// into an HTML chart. Handy when eyeballing normalization output.
func plotDefaultBusinessWeek(container *di.Container) {
	doc, err := container.RedisBusinessDao.GetBusiness(config.DEFAULT_BUSINESS_SLUG)
	if err != nil || doc == nil {
		log.Printf("[MAIN] No cached document to plot: %v", err)
		return
	}

	b, err := models.NewBusinessFromDocument(doc)
	if err != nil {
		log.Printf("[MAIN] Invalid cached document: %v", err)
		return
	}

	util.PrintBusinessDocumentPartially(doc)
	util.PlotWeeklyHours(b.Name, schedule.NewNormalizer().Normalize(b.Week))
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	fmt.Println("refreshing!")
	if err := container.BusinessRefresherService.RefreshBusinessData(); err != nil {
		fmt.Println("initial refresh failed:", err)
	}

	// plotDefaultBusinessWeek(container)

	fmt.Println("starting periodic job!")
	container.BusinessRefresherService.StartPeriodicJob(config.BUSINESS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.OpenHoursHttpServer.Start()
}
