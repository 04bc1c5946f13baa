package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"secondheart-dashboard/internal/app/config"
	"secondheart-dashboard/internal/app/delivery/http/controllers"
	"secondheart-dashboard/internal/app/delivery/http/middlewares"
	"secondheart-dashboard/internal/app/delivery/http/routers"
	"secondheart-dashboard/internal/app/drivers/logger"
	"secondheart-dashboard/internal/app/services/clinicstore"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

// mockapi is a development stand-in for the clinic backend. It seeds a
// small fixture set, generates a schedule and serves the same REST
// contract the dashboard consumes.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	store := clinicstore.NewStore()
	store.Seed(internalConfig.Stub.ScheduleDaysAhead)

	chiRouter := chi.NewRouter()
	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		middlewares.NewMiddlewares(log),
		controllers.NewClinicController(store, log),
	)

	server := &http.Server{
		Addr:    internalConfig.Stub.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Printf("Clinic stub listening on %s", internalConfig.Stub.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.Stub.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
