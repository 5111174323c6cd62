package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"openhours-server/api"
	"openhours-server/api/business"
	"openhours-server/config"
	redisdao "openhours-server/dao/redis"
	"openhours-server/db"
	"openhours-server/server"
	"openhours-server/server/handlers"
	services "openhours-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient              db.RedisClient
	RedisBusinessDao         *redisdao.RedisBusinessDAO
	BusinessAPI              business.BusinessAPI
	BusinessService          *services.BusinessService
	BusinessHandler          *handlers.BusinessHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	OpenHoursHttpServer      *server.OpenHoursHttpServer
	BusinessRefresherService *services.BusinessRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewBusinessRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Business DAO
	redisBusinessDao := redisdao.NewRedisBusinessDAO(redisClient)

	// Initialize BusinessAPI - fixture-backed mock outside prod
	var businessApiClient business.BusinessAPI
	if env != "prod" {
		businessApiClient = business.NewBusinessApiClientMock()
		log.Printf("Using mock business api")
	} else {
		log.Printf("Using prod business api")
		httpClient := api.NewHTTPClient(config.BUSINESS_API_ENDPOINT_BASE)
		businessApiClient = business.NewBusinessApiClient(httpClient)
	}

	// Initialize service layer
	businessService := services.NewBusinessService(redisBusinessDao, businessApiClient, config.DefaultBusinessSources)

	// Initialize business handler
	businessHandler := handlers.NewBusinessHandler(businessService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(businessHandler, muxRouter)

	// Initialize open hours server
	openHoursHttpServer := server.NewOpenHoursHttpServer(router, muxRouter)

	businessRefresherService := services.NewBusinessRefresherService(redisBusinessDao, businessApiClient, config.DefaultBusinessSources)

	return &Container{
		RedisClient:              redisClient,
		RedisBusinessDao:         redisBusinessDao,
		BusinessAPI:              businessApiClient,
		BusinessService:          businessService,
		BusinessHandler:          businessHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		OpenHoursHttpServer:      openHoursHttpServer,
		BusinessRefresherService: businessRefresherService,
	}
}
