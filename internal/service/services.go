// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-tours/internal/adapter"
	"github.com/MKhiriev/go-tours/internal/config"
	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/store"
	"github.com/MKhiriev/go-tours/internal/validators"
	"github.com/MKhiriev/go-tours/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	TourService    TourService
	ReviewService  ReviewService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg config.App, buildInfo models.BuildInfo, logger *logger.Logger) *Services {
	userValidator := validators.NewUserValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, mailer, userValidator, cfg, logger),
		UserService:    NewUserService(storages.UserRepository, userValidator, logger),
		TourService:    NewTourService(storages.TourRepository, validators.NewTourValidator(), logger),
		ReviewService:  NewReviewService(storages.ReviewRepository, storages.TourRepository, validators.NewReviewValidator(), logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
