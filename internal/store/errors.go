// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no active user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmailAlreadyExists is returned when a user is created or updated
	// with an email that belongs to another account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTourNotFound is returned when no visible tour has the given id.
	ErrTourNotFound = errors.New("tour was not found")

	// ErrTourNameTaken is returned when a tour name is already used.
	ErrTourNameTaken = errors.New("tour name already exists")

	// ErrReviewNotFound is returned when no review has the given id.
	ErrReviewNotFound = errors.New("review was not found")

	// ErrAlreadyReviewed is returned when a user reviews the same tour twice.
	ErrAlreadyReviewed = errors.New("tour already reviewed by user")

	// ErrUnknownReference is returned when a tour, user or guide id given
	// in a write does not exist.
	ErrUnknownReference = errors.New("referenced record does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot assemble a
	// statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
