// Package salarycalculator предоставляет маршруты для основного приложения.
package salarycalculator

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/salary-calculator/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/salary-calculator/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/salary-calculator/internal/http/handlers/health"
	"github.com/magabrotheeeer/salary-calculator/internal/http/handlers/salary/calculate"
	"github.com/magabrotheeeer/salary-calculator/internal/http/handlers/salary/history"
	"github.com/magabrotheeeer/salary-calculator/internal/http/handlers/salary/holidays"
	"github.com/magabrotheeeer/salary-calculator/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/salary-calculator/internal/services/auth"
	salaryservice "github.com/magabrotheeeer/salary-calculator/internal/services/salary"

	"log/slog"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, calculatorService *salaryservice.CalculatorService, authService *authservice.AuthService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/salary/calculate", calculate.New(logger, calculatorService).ServeHTTP)
			r.Get("/salary/history", history.New(logger, calculatorService).ServeHTTP)
			r.Get("/holidays", holidays.New(logger, calculatorService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
