package routers

import (
	"secondheart-dashboard/internal/app/config"
	"secondheart-dashboard/internal/app/delivery/http/controllers"
	"secondheart-dashboard/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	clinicController *controllers.ClinicController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRFToken", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.Stub.MaxRequestsPerSecond, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger)

	router.Route("/api", func(r chi.Router) {
		r.Get("/me/", clinicController.Me)
		r.Get("/specialties/", clinicController.ListSpecialties)
		r.Get("/doctors/", clinicController.ListDoctors)
		r.Get("/slots/", clinicController.ListSlots)

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", clinicController.ListAppointments)
			r.Post("/", clinicController.CreateAppointment)
			r.Delete("/{appointmentID}/", clinicController.DeleteAppointment)
		})
	})
}
