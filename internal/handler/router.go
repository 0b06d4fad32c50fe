package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardoctor/cardoctor-go/internal/middleware"
	"github.com/cardoctor/cardoctor-go/internal/service"
)

// RouterConfig carries everything the route table needs.
type RouterConfig struct {
	JWTSecret   string
	Auth        *service.AuthService
	Users       *service.UserService
	Cars        *service.CarService
	Maintenance *service.MaintenanceService

	// AuthRateLimit disables the per-IP limiter on auth routes when false,
	// which tests rely on.
	AuthRateLimit bool
}

// NewRouter builds the full route table.
func NewRouter(cfg RouterConfig) http.Handler {
	authHandler := NewAuthHandler(cfg.Auth)
	userHandler := NewUserHandler(cfg.Users)
	carHandler := NewCarHandler(cfg.Cars)
	maintenanceHandler := NewMaintenanceHandler(cfg.Maintenance)
	healthHandler := NewHealthHandler()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler.HandleHealth)

	r.Group(func(r chi.Router) {
		if cfg.AuthRateLimit {
			r.Use(middleware.RateLimit(5, 10))
		}
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Get("/api/v1/user/profile", userHandler.HandleGetProfile)
		r.Put("/api/v1/user/profile", userHandler.HandleUpdateProfile)
		r.Put("/api/v1/user/password", userHandler.HandleChangePassword)

		r.Get("/api/v1/cars", carHandler.HandleListCars)
		r.Post("/api/v1/cars", carHandler.HandleCreateCar)
		r.Get("/api/v1/cars/{car_id}", carHandler.HandleGetCar)
		r.Put("/api/v1/cars/{car_id}", carHandler.HandleUpdateCar)
		r.Delete("/api/v1/cars/{car_id}", carHandler.HandleDeleteCar)

		r.Get("/api/v1/maintenance", maintenanceHandler.HandleListRecords)
		r.Post("/api/v1/maintenance", maintenanceHandler.HandleCreateRecord)
		r.Get("/api/v1/maintenance/{record_id}", maintenanceHandler.HandleGetRecord)
		r.Put("/api/v1/maintenance/{record_id}", maintenanceHandler.HandleUpdateRecord)
		r.Delete("/api/v1/maintenance/{record_id}", maintenanceHandler.HandleDeleteRecord)
	})

	return r
}
