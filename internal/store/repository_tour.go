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
	"github.com/jackc/pgx/v5/pgtype"
)

// tourRepository is the PostgreSQL-backed implementation of [TourRepository].
type tourRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTourRepository(db *DB, logger *logger.Logger) TourRepository {
	logger.Debug().Msg("creating tour repository")
	return &tourRepository{
		db:     db,
		logger: logger,
	}
}

// ListTours runs the list query over visible tours and populates guides.
func (r *tourRepository) ListTours(ctx context.Context, params url.Values) ([]query.Document, error) {
	log := logger.FromContext(ctx)

	tours, err := query.New(Tours, visibleTours(Tours.Select()), params).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Execute(ctx, r.db)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.ListTours").Msg("error listing tours")
		return nil, err
	}

	if err = r.db.withGuidesPopulated(ctx, tours); err != nil {
		log.Err(err).Str("func", "*tourRepository.ListTours").Msg("error populating guides")
		return nil, err
	}

	return tours, nil
}

// GetTour returns a visible tour with its guides and reviews populated.
func (r *tourRepository) GetTour(ctx context.Context, id int64) (query.Document, error) {
	log := logger.FromContext(ctx)

	tour, err := r.db.findOne(ctx, Tours, visibleTours(Tours.Select()).Where(sq.Eq{"id": id}), ErrTourNotFound)
	if err != nil {
		if !errors.Is(err, ErrTourNotFound) {
			log.Err(err).Str("func", "*tourRepository.GetTour").Msg("error getting tour")
		}
		return nil, err
	}

	if err = r.db.withGuidesPopulated(ctx, []query.Document{tour}); err != nil {
		log.Err(err).Str("func", "*tourRepository.GetTour").Msg("error populating guides")
		return nil, err
	}
	if err = r.db.withReviewsPopulated(ctx, tour); err != nil {
		log.Err(err).Str("func", "*tourRepository.GetTour").Msg("error populating reviews")
		return nil, err
	}

	return tour, nil
}

// CreateTour inserts the tour and its guides in one transaction and returns
// the stored document.
func (r *tourRepository) CreateTour(ctx context.Context, tour models.Tour) (query.Document, error) {
	log := logger.FromContext(ctx)

	insertTour, args, err := buildInsertTourQuery(tour)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.CreateTour").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.inTx(ctx, "*tourRepository.CreateTour", func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, insertTour, args...).Scan(&id); err != nil {
			return err
		}
		return insertGuides(ctx, tx, id, tour.Guides)
	})
	if err != nil {
		return nil, err
	}

	return r.db.findOne(ctx, Tours, Tours.Select().Where(sq.Eq{"id": id}), ErrTourNotFound)
}

// UpdateTour applies update to a visible tour, replacing its guides when
// given, and returns the new document with guides populated.
func (r *tourRepository) UpdateTour(ctx context.Context, id int64, update models.TourUpdate) (query.Document, error) {
	log := logger.FromContext(ctx)

	updateTour, args, err := buildUpdateTourQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.UpdateTour").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.inTx(ctx, "*tourRepository.UpdateTour", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, updateTour, args...)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err != nil {
			return err
		} else if affected == 0 {
			return ErrTourNotFound
		}

		if update.Guides == nil {
			return nil
		}
		if _, err = tx.ExecContext(ctx, deleteTourGuides, id); err != nil {
			return err
		}
		return insertGuides(ctx, tx, id, *update.Guides)
	})
	if err != nil {
		return nil, err
	}

	tour, err := r.db.findOne(ctx, Tours, Tours.Select().Where(sq.Eq{"id": id}), ErrTourNotFound)
	if err != nil {
		return nil, err
	}
	if err = r.db.withGuidesPopulated(ctx, []query.Document{tour}); err != nil {
		log.Err(err).Str("func", "*tourRepository.UpdateTour").Msg("error populating guides")
		return nil, err
	}

	return tour, nil
}

// DeleteTour removes a visible tour together with its reviews and guide
// links.
func (r *tourRepository) DeleteTour(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteTour, id)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.DeleteTour").Msg("error deleting tour")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTourNotFound
	}

	return nil
}

// TourStats groups tours rated 4.5 or better by difficulty.
func (r *tourRepository) TourStats(ctx context.Context) ([]models.TourStats, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildTourStatsQuery()
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.TourStats").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.TourStats").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.TourStats, 0)
	for rows.Next() {
		var s models.TourStats
		if err = rows.Scan(&s.Difficulty, &s.NumTours, &s.NumRatings, &s.AvgRating, &s.AvgPrice, &s.MinPrice, &s.MaxPrice); err != nil {
			log.Err(err).Str("func", "*tourRepository.TourStats").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		stats = append(stats, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

// MonthlyPlan counts the tour starts of each month of year, busiest month
// first.
func (r *tourRepository) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildMonthlyPlanQuery(year)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.MonthlyPlan").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.MonthlyPlan").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	typeMap := pgtype.NewMap()
	plan := make([]models.MonthlyPlan, 0, monthlyPlanLimit)
	for rows.Next() {
		var p models.MonthlyPlan
		if err = rows.Scan(&p.Month, &p.NumTourStarts, typeMap.SQLScanner(&p.Tours)); err != nil {
			log.Err(err).Str("func", "*tourRepository.MonthlyPlan").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		plan = append(plan, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return plan, nil
}

// RecalculateRatings refreshes ratingsQuantity and ratingsAverage of a tour
// from its reviews.
func (r *tourRepository) RecalculateRatings(ctx context.Context, tourID int64) error {
	if _, err := r.db.ExecContext(ctx, recalculateRatings, tourID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tourRepository.RecalculateRatings").Msg("error recalculating ratings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// inTx runs fn in a transaction and maps constraint violations to store
// errors.
func (r *tourRepository) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		if errors.Is(err, ErrTourNotFound) {
			return err
		}
		log.Err(err).Str("func", funcName).Msg("error writing tour")
		return tourWriteError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func insertGuides(ctx context.Context, tx *sql.Tx, tourID int64, guides []int64) error {
	if len(guides) == 0 {
		return nil
	}

	q, args, err := buildInsertTourGuidesQuery(tourID, guides)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return err
}

func tourWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrTourNameTaken
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrUnknownReference, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
