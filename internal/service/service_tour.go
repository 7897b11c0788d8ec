// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/internal/store"
	"github.com/MKhiriev/go-tours/internal/validators"
	"github.com/MKhiriev/go-tours/models"
)

type tourService struct {
	tourRepository store.TourRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewTourService(tourRepository store.TourRepository, validator validators.Validator, logger *logger.Logger) TourService {
	return &tourService{
		tourRepository: tourRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *tourService) ListTours(ctx context.Context, params url.Values) ([]query.Document, error) {
	return s.tourRepository.ListTours(ctx, params)
}

func (s *tourService) GetTour(ctx context.Context, id int64) (query.Document, error) {
	return s.tourRepository.GetTour(ctx, id)
}

func (s *tourService) CreateTour(ctx context.Context, tour models.Tour) (query.Document, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, tour); err != nil {
		log.Debug().Err(err).Str("name", tour.Name).Msg("tour rejected by validation")
		return nil, err
	}

	created, err := s.tourRepository.CreateTour(ctx, tour)
	if err != nil {
		log.Err(err).Str("name", tour.Name).Msg("error creating tour")
		return nil, fmt.Errorf("error creating tour: %w", err)
	}

	return created, nil
}

func (s *tourService) UpdateTour(ctx context.Context, id int64, update models.TourUpdate) (query.Document, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Int64("id", id).Msg("tour update rejected by validation")
		return nil, err
	}

	updated, err := s.tourRepository.UpdateTour(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error updating tour")
		return nil, fmt.Errorf("error updating tour: %w", err)
	}

	return updated, nil
}

func (s *tourService) DeleteTour(ctx context.Context, id int64) error {
	if err := s.tourRepository.DeleteTour(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error deleting tour")
		return fmt.Errorf("error deleting tour: %w", err)
	}
	return nil
}

// TourStats reports per-difficulty figures over well rated tours.
func (s *tourService) TourStats(ctx context.Context) ([]models.TourStats, error) {
	return s.tourRepository.TourStats(ctx)
}

// MonthlyPlan counts tour starts per month of year.
func (s *tourService) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error) {
	return s.tourRepository.MonthlyPlan(ctx, year)
}
