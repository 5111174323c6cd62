package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"openhours-server/config"
)

type OpenHoursHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewOpenHoursHttpServer(router *Router, muxRouter *mux.Router) *OpenHoursHttpServer {
	return &OpenHoursHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers the routes and serves until SIGINT/SIGTERM, then shuts
// down gracefully with a 5 second deadline.
func (s *OpenHoursHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    config.SERVER_ADDRESS,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on " + config.SERVER_ADDRESS)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
