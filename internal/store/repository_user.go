// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the server-assigned
// fields (ID, Photo default, Active, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.Photo, string(user.Role), user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		case "":
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail returns the active account with email, including its
// password hash.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID returns the active account with id.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

// FindUserByResetToken returns the active account holding hashedToken as an
// unexpired reset ticket.
func (r *userRepository) FindUserByResetToken(ctx context.Context, hashedToken string, now time.Time) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByResetToken", findUserByResetToken, hashedToken, now)
}

func (r *userRepository) findUser(ctx context.Context, funcName, statement string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, statement, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Msg("user was not found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ListUsers runs the list query over active users.
func (r *userRepository) ListUsers(ctx context.Context, params url.Values) ([]query.Document, error) {
	docs, err := query.New(Users, activeUsers(Users.Select()), params).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Execute(ctx, r.db)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return docs, nil
}

func (r *userRepository) GetUser(ctx context.Context, id int64) (query.Document, error) {
	doc, err := r.db.findOne(ctx, Users, activeUsers(Users.Select()).Where(sq.Eq{"id": id}), ErrUserNotFound)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetUser").Msg("error getting user")
	}
	return doc, err
}

// UpdateUser applies update to an active user and returns the new document.
// Password fields cannot be changed here.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (query.Document, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execOne(ctx, "*userRepository.UpdateUser", q, args...); err != nil {
		return nil, err
	}

	return r.GetUser(ctx, id)
}

// DeleteUser removes an active user permanently.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.execOne(ctx, "*userRepository.DeleteUser", deleteUser, id)
}

// UpdatePassword stores a new password hash and clears any reset ticket.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error {
	return r.execOne(ctx, "*userRepository.UpdatePassword", updatePassword, id, passwordHash, changedAt)
}

// SetResetToken stores the hash and expiry of a password reset ticket.
func (r *userRepository) SetResetToken(ctx context.Context, id int64, hashedToken string, expires time.Time) error {
	return r.execOne(ctx, "*userRepository.SetResetToken", setResetToken, id, hashedToken, expires)
}

func (r *userRepository) ClearResetToken(ctx context.Context, id int64) error {
	return r.execOne(ctx, "*userRepository.ClearResetToken", clearResetToken, id)
}

// Deactivate closes an account. Deactivated users disappear from every
// lookup.
func (r *userRepository) Deactivate(ctx context.Context, id int64) error {
	return r.execOne(ctx, "*userRepository.Deactivate", deactivateUser, id)
}

// PurgeExpiredResetTokens clears every reset ticket that expired at or
// before now and returns how many were cleared.
func (r *userRepository) PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, purgeExpiredResetTokens, now)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.PurgeExpiredResetTokens").Msg("error purging reset tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

// execOne runs a statement that must affect exactly one active user.
func (r *userRepository) execOne(ctx context.Context, funcName, statement string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, statement, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().Str("func", funcName).Msg("user was not found")
		return ErrUserNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user            models.User
		role            string
		changedAt       sql.NullTime
		resetToken      sql.NullString
		resetExpiration sql.NullTime
	)

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Photo, &role, &user.PasswordHash,
		&changedAt, &resetToken, &resetExpiration, &user.Active, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	if changedAt.Valid {
		user.PasswordChangedAt = &changedAt.Time
	}
	if resetToken.Valid {
		user.PasswordResetToken = &resetToken.String
	}
	if resetExpiration.Valid {
		user.PasswordResetExpires = &resetExpiration.Time
	}

	return user, nil
}
