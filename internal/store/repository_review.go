// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository]. Reads populate the reviewer of every review.
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reviewRepository) ListReviews(ctx context.Context, tourID int64, params url.Values) ([]query.Document, error) {
	log := logger.FromContext(ctx)

	base := Reviews.Select()
	if tourID != 0 {
		base = base.Where(sq.Eq{"tour_id": tourID})
	}

	reviews, err := query.New(Reviews, base, params).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Execute(ctx, r.db)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviews").Msg("error listing reviews")
		return nil, err
	}

	if err = r.db.withReviewersPopulated(ctx, reviews); err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviews").Msg("error populating reviewers")
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) GetReview(ctx context.Context, id int64) (query.Document, error) {
	log := logger.FromContext(ctx)

	review, err := r.db.findOne(ctx, Reviews, Reviews.Select().Where(sq.Eq{"id": id}), ErrReviewNotFound)
	if err != nil {
		if !errors.Is(err, ErrReviewNotFound) {
			log.Err(err).Str("func", "*reviewRepository.GetReview").Msg("error getting review")
		}
		return nil, err
	}

	if err = r.db.withReviewersPopulated(ctx, []query.Document{review}); err != nil {
		log.Err(err).Str("func", "*reviewRepository.GetReview").Msg("error populating reviewer")
		return nil, err
	}

	return review, nil
}

// FindReview returns the raw review, used for ownership checks.
func (r *reviewRepository) FindReview(ctx context.Context, id int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	var review models.Review
	err := r.db.QueryRowContext(ctx, findReviewByID, id).
		Scan(&review.ID, &review.Review, &review.Rating, &review.TourID, &review.UserID, &review.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, ErrReviewNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.FindReview").Msg("error finding review")
		return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return review, nil
}

// CreateReview stores a review and returns its document with the reviewer
// left as an id.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAlreadyReviewed].
//   - PostgreSQL foreign_key_violation (23503) → [ErrUnknownReference].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (query.Document, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, createReview, review.Review, review.Rating, review.TourID, review.UserID).Scan(&id)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error creating review")
		return nil, reviewWriteError(err)
	}

	return r.db.findOne(ctx, Reviews, Reviews.Select().Where(sq.Eq{"id": id}), ErrReviewNotFound)
}

func (r *reviewRepository) UpdateReview(ctx context.Context, id int64, update models.ReviewUpdate) (query.Document, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildUpdateReviewQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tourID int64
	if err = r.db.QueryRowContext(ctx, q, args...).Scan(&tourID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("error updating review")
		return nil, reviewWriteError(err)
	}

	return r.GetReview(ctx, id)
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	var tourID int64
	if err := r.db.QueryRowContext(ctx, deleteReview, id).Scan(&tourID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrReviewNotFound
		}
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("error deleting review")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return tourID, nil
}

func reviewWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrAlreadyReviewed
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrUnknownReference, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
