// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/internal/store"
	"github.com/MKhiriev/go-tours/internal/validators"
	"github.com/MKhiriev/go-tours/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, params url.Values) ([]query.Document, error) {
	return s.userRepository.ListUsers(ctx, params)
}

func (s *userService) GetUser(ctx context.Context, id int64) (query.Document, error) {
	return s.userRepository.GetUser(ctx, id)
}

// UpdateUser applies an admin update. Passwords are never part of it.
func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (query.Document, error) {
	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		update.Email = &email
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("id", id).Msg("user update rejected by validation")
		return nil, err
	}

	user, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error updating user")
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

// UpdateMe lets a user change their own name, email and photo.
// Requests carrying password fields fail with ErrPasswordUpdateNotAllowed.
func (s *userService) UpdateMe(ctx context.Context, id int64, req models.UpdateMeRequest) (query.Document, error) {
	if req.HasPassword() {
		return nil, ErrPasswordUpdateNotAllowed
	}
	return s.UpdateUser(ctx, id, req.ToUserUpdate())
}

// DeleteMe deactivates the account. The row is kept.
func (s *userService) DeleteMe(ctx context.Context, id int64) error {
	if err := s.userRepository.Deactivate(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error deactivating user")
		return fmt.Errorf("error deactivating user: %w", err)
	}
	return nil
}

func (s *userService) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	return s.userRepository.PurgeExpiredResetTokens(ctx, s.now())
}
