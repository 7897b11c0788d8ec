// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tours/internal/adapter"
	"github.com/MKhiriev/go-tours/internal/config"
	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/store"
	"github.com/MKhiriev/go-tours/internal/utils"
	"github.com/MKhiriev/go-tours/internal/validators"
	"github.com/MKhiriev/go-tours/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost used for stored passwords.
const PasswordHashCost = 12

// passwordChangedSkew moves passwordChangedAt one second into the past so a
// token issued right after the change is not rejected.
const passwordChangedSkew = time.Second

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification, the password reset flow and
// the JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mailer delivers password reset tickets.
	mailer adapter.Mailer

	// validator checks signup and password change input.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// resetTokenTTL is the lifetime of a password reset ticket.
	resetTokenTTL time.Duration

	// concealAccountExistence makes ForgotPassword succeed for unknown emails.
	concealAccountExistence bool

	// hashCost is the bcrypt cost. Tests lower it to bcrypt.MinCost.
	hashCost int

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and Mailer and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mailer adapter.Mailer, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:          userRepository,
		mailer:                  mailer,
		validator:               validator,
		tokenSignKey:            cfg.TokenSignKey,
		tokenIssuer:             cfg.TokenIssuer,
		tokenDuration:           cfg.TokenDuration,
		resetTokenTTL:           cfg.ResetTokenTTL,
		concealAccountExistence: cfg.ConcealAccountExistence,
		hashCost:                PasswordHashCost,
		now:                     time.Now,
		logger:                  logger,
	}
}

// Signup creates a new account from the whitelisted signup fields.
//
// Returns the persisted user or:
//   - validators.Errors if any field breaks a rule.
//   - ErrAdminRoleNotAllowed if the admin role is requested.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("signup rejected by validation")
		return models.User{}, err
	}

	if req.Role == models.RoleAdmin {
		log.Warn().Str("email", req.Email).Msg("attempt to self-assign admin role")
		return models.User{}, ErrAdminRoleNotAllowed
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Photo:        req.Photo,
		Role:         req.Role,
		PasswordHash: hash,
		Active:       true,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password are indistinguishable to the caller:
// both return ErrIncorrectCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.User{}, ErrMissingCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("email", email).Msg("login for unknown email")
		return models.User{}, ErrIncorrectCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !checkPassword(user.PasswordHash, req.Password) {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrIncorrectCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates a raw JWT string and loads its subject.
//
// Expired tokens fail with ErrTokenIsExpired, every other verification
// failure with ErrTokenIsInvalid. A token whose subject is gone or inactive
// fails with ErrUserNoLongerExists, and one issued before the last password
// change with ErrPasswordChangedRecently.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.User{}, ErrTokenIsExpired
	}
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, ErrTokenIsInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNoLongerExists
	}
	if err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.ChangedPasswordAfter(token.IssuedAt) {
		return models.User{}, ErrPasswordChangedRecently
	}

	return user, nil
}

// ForgotPassword stores a fresh reset ticket for the account and mails it.
//
// If the mail cannot be delivered the ticket is cleared again and
// ErrResetMailFailed is returned.
func (a *authService) ForgotPassword(ctx context.Context, email, resetURLPrefix string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		if a.concealAccountExistence {
			log.Info().Str("email", email).Msg("reset requested for unknown email")
			return nil
		}
		return ErrNoUserWithEmail
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	plain, hashed, err := utils.GenerateResetToken()
	if err != nil {
		log.Err(err).Msg("error generating reset token")
		return err
	}

	if err = a.userRepository.SetResetToken(ctx, user.ID, hashed, a.now().Add(a.resetTokenTTL)); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("error storing reset token")
		return fmt.Errorf("error storing reset token: %w", err)
	}

	resetURL := strings.TrimSuffix(resetURLPrefix, "/") + "/" + plain
	if err = a.mailer.Send(ctx, a.resetEmail(user.Email, resetURL)); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("error sending reset mail")
		if clearErr := a.userRepository.ClearResetToken(ctx, user.ID); clearErr != nil {
			log.Err(clearErr).Int64("id", user.ID).Msg("error clearing reset token")
		}
		return fmt.Errorf("%w: %w", ErrResetMailFailed, err)
	}

	return nil
}

func (a *authService) resetEmail(to, resetURL string) models.Email {
	return models.Email{
		To:      to,
		Subject: fmt.Sprintf("Your password reset token (valid for %d min)", int(a.resetTokenTTL.Minutes())),
		Body: "Forgot your password? Submit a PATCH request with your new password and passwordConfirm to: " +
			resetURL + ".\nIf you didn't forget your password, please ignore this email!",
	}
}

// ResetPassword consumes a reset ticket and sets a new password.
// Nothing is changed when the ticket is unknown or expired.
func (a *authService) ResetPassword(ctx context.Context, resetToken string, req models.ResetPasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	now := a.now()
	user, err := a.userRepository.FindUserByResetToken(ctx, utils.HashResetToken(resetToken), now)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrResetTokenInvalid
	}
	if err != nil {
		log.Err(err).Msg("user search by reset token failed")
		return models.User{}, fmt.Errorf("user search by reset token failed: %w", err)
	}

	if err = a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	return a.setPassword(ctx, user, req.Password, now)
}

// UpdatePassword changes the password of a logged-in user after checking
// the current one.
func (a *authService) UpdatePassword(ctx context.Context, userID int64, req models.UpdatePasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNoLongerExists
	}
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !checkPassword(user.PasswordHash, req.PasswordCurrent) {
		return models.User{}, ErrCurrentPasswordWrong
	}

	if err = a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	return a.setPassword(ctx, user, req.Password, a.now())
}

func (a *authService) setPassword(ctx context.Context, user models.User, password string, now time.Time) (models.User, error) {
	hash, err := a.hashPassword(password)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("password hashing failed")
		return models.User{}, err
	}

	changedAt := now.Add(-passwordChangedSkew)
	if err = a.userRepository.UpdatePassword(ctx, user.ID, hash, changedAt); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("error updating password")
		return models.User{}, fmt.Errorf("error updating password: %w", err)
	}

	user.PasswordHash = hash
	user.PasswordChangedAt = &changedAt
	user.PasswordResetToken = nil
	user.PasswordResetExpires = nil
	return user, nil
}

func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.hashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
