// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// maxBodyBytes caps request bodies under /api.
const maxBodyBytes = 10 << 10

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withTelemetry)
	router.Use(h.withRecoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   h.server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}).Handler)
	router.Use(withSecurityHeaders)
	if !h.app.IsProduction() {
		router.Use(withLogging)
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withRateLimit())
		r.Use(middleware.RequestSize(maxBodyBytes))
		r.Use(withoutParamPollution)
		r.Use(withEscapedBody)
		if h.server.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.server.RequestTimeout))
		}

		r.Route("/v1", func(r chi.Router) {
			r.Get("/version", h.handle(h.getServerVersion))
			r.Route("/users", h.userRoutes)
			r.Route("/tours", h.tourRoutes)
			r.Route("/reviews", h.reviewRoutes)
		})
	})

	if metrics := h.telemetry.MetricsHandler(); metrics != nil {
		router.Handle("/metrics", metrics)
	}

	return router
}

func (h *Handler) userRoutes(r chi.Router) {
	// routes without authorization
	r.Post("/signup", h.handle(h.signup))
	r.Post("/login", h.handle(h.login))
	r.Post("/forgotpass", h.handle(h.forgotPassword))
	r.Patch("/resetpass/{token}", h.handle(h.resetPassword))

	r.Group(func(r chi.Router) {
		r.Use(h.protect)

		r.Patch("/updatepass", h.handle(h.updatePassword))
		r.Get("/me", h.handle(h.getMe))
		r.Patch("/me", h.handle(h.updateMe))
		r.Patch("/updateMe", h.handle(h.updateMe))
		r.Delete("/deleteMe", h.handle(h.deleteMe))

		r.Group(func(r chi.Router) {
			r.Use(h.authorize(permManageUsers))

			r.Get("/", h.handle(h.listUsers))
			r.Get("/{id}", h.handle(h.getUser))
			r.Patch("/{id}", h.handle(h.updateUser))
			r.Delete("/{id}", h.handle(h.deleteUser))
		})
	})
}

func (h *Handler) tourRoutes(r chi.Router) {
	r.Get("/", h.handle(h.listTours))
	r.With(aliasTopFive).Get("/topfive", h.handle(h.listTours))
	r.Get("/tour-stats", h.handle(h.tourStats))
	r.Get("/{tourId}", h.handle(h.getTour))

	r.With(h.protect, h.authorize(permMonthlyPlan)).
		Get("/monthly-plan/{year}", h.handle(h.monthlyPlan))

	r.Group(func(r chi.Router) {
		r.Use(h.protect, h.authorize(permManageTours))

		r.Post("/", h.handle(h.createTour))
		r.Patch("/{tourId}", h.handle(h.updateTour))
		r.Delete("/{tourId}", h.handle(h.deleteTour))
	})

	r.Route("/{tourId}/reviews", h.reviewRoutes)
}

// reviewRoutes is mounted both at /reviews and nested under a tour.
func (h *Handler) reviewRoutes(r chi.Router) {
	r.Use(h.protect)

	r.Get("/", h.handle(h.listReviews))
	r.With(h.authorize(permWriteReviews)).Post("/", h.handle(h.createReview))
	r.Get("/{id}", h.handle(h.getReview))

	r.Group(func(r chi.Router) {
		r.Use(h.authorize(permEditReviews))

		r.Patch("/{id}", h.handle(h.updateReview))
		r.Delete("/{id}", h.handle(h.deleteReview))
	})
}
