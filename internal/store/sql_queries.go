// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-tours/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/gosimple/slug"
)

const userColumns = `id, name, email, photo, role, password_hash, password_changed_at,
    password_reset_token, password_reset_expires, active, created_at`

const (
	createUser = `INSERT INTO users (name, email, photo, role, password_hash)
    VALUES ($1, $2, COALESCE(NULLIF($3, ''), 'default.jpg'), $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1 AND active = TRUE;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1 AND active = TRUE;`

	findUserByResetToken = `SELECT ` + userColumns + `
    FROM users
    WHERE password_reset_token = $1 AND password_reset_expires > $2 AND active = TRUE;`

	updatePassword = `UPDATE users
    SET password_hash = $2, password_changed_at = $3,
        password_reset_token = NULL, password_reset_expires = NULL,
        version = version + 1
    WHERE id = $1 AND active = TRUE;`

	setResetToken = `UPDATE users
    SET password_reset_token = $2, password_reset_expires = $3
    WHERE id = $1;`

	clearResetToken = `UPDATE users
    SET password_reset_token = NULL, password_reset_expires = NULL
    WHERE id = $1;`

	deactivateUser = `UPDATE users
    SET active = FALSE, version = version + 1
    WHERE id = $1 AND active = TRUE;`

	deleteUser = `DELETE FROM users WHERE id = $1 AND active = TRUE;`

	purgeExpiredResetTokens = `UPDATE users
    SET password_reset_token = NULL, password_reset_expires = NULL
    WHERE password_reset_expires <= $1;`
)

const (
	deleteTour = `DELETE FROM tours WHERE id = $1 AND secret_tour = FALSE;`

	deleteTourGuides = `DELETE FROM tour_guides WHERE tour_id = $1;`

	// recalculateRatings falls back to 0 ratings averaging 4.5 once the last
	// review of a tour is gone.
	recalculateRatings = `UPDATE tours
    SET ratings_quantity = s.quantity, ratings_average = s.average
    FROM (
        SELECT COUNT(*) AS quantity,
               COALESCE(ROUND(AVG(rating)::numeric, 1)::double precision, 4.5) AS average
        FROM reviews
        WHERE tour_id = $1
    ) AS s
    WHERE tours.id = $1;`
)

const (
	createReview = `INSERT INTO reviews (review, rating, tour_id, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	findReviewByID = `SELECT id, review, rating, tour_id, user_id, created_at
    FROM reviews
    WHERE id = $1;`

	deleteReview = `DELETE FROM reviews WHERE id = $1 RETURNING tour_id;`
)

// monthlyPlanLimit caps the monthly plan at one row per month.
const monthlyPlanLimit = 12

// buildTourStatsQuery groups well-rated visible tours by difficulty.
func buildTourStatsQuery() (string, []any, error) {
	return visibleTours(psql.Select(
		"UPPER(difficulty) AS difficulty",
		"COUNT(*) AS num_tours",
		"SUM(ratings_quantity) AS num_ratings",
		"AVG(ratings_average) AS avg_rating",
		"AVG(price) AS avg_price",
		"MIN(price) AS min_price",
		"MAX(price) AS max_price",
	).From("tours")).
		Where(sq.GtOrEq{"ratings_average": 4.5}).
		GroupBy("UPPER(difficulty)").
		OrderBy("min_price DESC").
		ToSql()
}

// buildMonthlyPlanQuery counts tour starts per month of year.
func buildMonthlyPlanQuery(year int) (string, []any, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	return psql.Select(
		"EXTRACT(MONTH FROM d)::int AS month",
		"COUNT(*) AS num_tour_starts",
		"ARRAY_AGG(name ORDER BY name) AS tours",
	).
		From("tours").
		JoinClause("CROSS JOIN LATERAL unnest(start_dates) AS d").
		Where("secret_tour = FALSE").
		Where(sq.GtOrEq{"d": from}).
		Where(sq.Lt{"d": to}).
		GroupBy("month").
		OrderBy("num_tour_starts DESC", "month ASC").
		Limit(monthlyPlanLimit).
		ToSql()
}

// buildInsertTourQuery inserts a tour and returns its id. The slug is
// derived from the name.
func buildInsertTourQuery(tour models.Tour) (string, []any, error) {
	startLocation, err := startLocationValue(tour.StartLocation)
	if err != nil {
		return "", nil, err
	}
	locations, err := locationsValue(tour.Locations)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert("tours").
		SetMap(map[string]any{
			"name":           tour.Name,
			"slug":           slug.Make(tour.Name),
			"duration":       tour.Duration,
			"max_group_size": tour.MaxGroupSize,
			"difficulty":     string(tour.Difficulty),
			"price":          tour.Price,
			"price_discount": tour.PriceDiscount,
			"summary":        tour.Summary,
			"description":    tour.Description,
			"image_cover":    tour.ImageCover,
			"images":         nonNilStrings(tour.Images),
			"start_dates":    nonNilTimes(tour.StartDates),
			"secret_tour":    tour.SecretTour,
			"start_location": startLocation,
			"locations":      locations,
		}).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateTourQuery updates the non-nil fields of a visible tour. A new
// name also renames the slug.
func buildUpdateTourQuery(id int64, update models.TourUpdate) (string, []any, error) {
	set := map[string]any{"version": sq.Expr("version + 1")}

	if update.Name != nil {
		set["name"] = *update.Name
		set["slug"] = slug.Make(*update.Name)
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.MaxGroupSize != nil {
		set["max_group_size"] = *update.MaxGroupSize
	}
	if update.Difficulty != nil {
		set["difficulty"] = string(*update.Difficulty)
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.PriceDiscount != nil {
		set["price_discount"] = *update.PriceDiscount
	}
	if update.Summary != nil {
		set["summary"] = *update.Summary
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.ImageCover != nil {
		set["image_cover"] = *update.ImageCover
	}
	if update.Images != nil {
		set["images"] = nonNilStrings(*update.Images)
	}
	if update.StartDates != nil {
		set["start_dates"] = nonNilTimes(*update.StartDates)
	}
	if update.SecretTour != nil {
		set["secret_tour"] = *update.SecretTour
	}
	if update.StartLocation != nil {
		v, err := startLocationValue(update.StartLocation)
		if err != nil {
			return "", nil, err
		}
		set["start_location"] = v
	}
	if update.Locations != nil {
		v, err := locationsValue(*update.Locations)
		if err != nil {
			return "", nil, err
		}
		set["locations"] = v
	}

	return psql.Update("tours").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Where("secret_tour = FALSE").
		ToSql()
}

// buildInsertTourGuidesQuery links guides to a tour.
func buildInsertTourGuidesQuery(tourID int64, guides []int64) (string, []any, error) {
	q := psql.Insert("tour_guides").Columns("tour_id", "user_id")
	for _, guide := range uniqueIDs(guides) {
		q = q.Values(tourID, guide)
	}
	return q.Suffix("ON CONFLICT DO NOTHING").ToSql()
}

// buildUpdateUserQuery updates the non-nil fields of an active user.
func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	set := map[string]any{"version": sq.Expr("version + 1")}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Photo != nil {
		set["photo"] = *update.Photo
	}
	if update.Role != nil {
		set["role"] = string(*update.Role)
	}

	return activeUsersUpdate(psql.Update("users").SetMap(set).Where(sq.Eq{"id": id})).ToSql()
}

func activeUsersUpdate(b sq.UpdateBuilder) sq.UpdateBuilder {
	return b.Where("active = TRUE")
}

// buildUpdateReviewQuery updates the non-nil fields of a review and
// returns the tour it belongs to.
func buildUpdateReviewQuery(id int64, update models.ReviewUpdate) (string, []any, error) {
	set := map[string]any{"version": sq.Expr("version + 1")}

	if update.Review != nil {
		set["review"] = *update.Review
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}

	return psql.Update("reviews").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING tour_id").
		ToSql()
}

// startLocationValue encodes a GeoJSON point for a jsonb column, NULL when
// absent.
func startLocationValue(l *models.Location) (any, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func locationsValue(l []models.Location) (any, error) {
	if l == nil {
		l = []models.Location{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilTimes(v []time.Time) []time.Time {
	if v == nil {
		return []time.Time{}
	}
	return v
}
