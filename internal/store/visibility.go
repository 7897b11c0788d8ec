// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-tours/internal/query"
	sq "github.com/Masterminds/squirrel"
)

// visibleTours narrows a tours query to tours that are not secret.
func visibleTours(b sq.SelectBuilder) sq.SelectBuilder {
	return b.Where("secret_tour = FALSE")
}

// activeUsers narrows a users query to accounts that were not deactivated.
func activeUsers(b sq.SelectBuilder) sq.SelectBuilder {
	return b.Where("active = TRUE")
}

// withGuidesPopulated replaces the guide ids of every tour with the guides'
// user documents. Inactive guides are dropped. Tours projected without
// guides are left untouched.
func (db *DB) withGuidesPopulated(ctx context.Context, tours []query.Document) error {
	var ids []int64
	for _, tour := range tours {
		if guides, ok := tour["guides"].([]int64); ok {
			ids = append(ids, guides...)
		}
	}

	users := map[int64]query.Document{}
	if len(ids) > 0 {
		var err error
		if users, err = db.usersByID(ctx, ids, guideFields); err != nil {
			return err
		}
	}

	for _, tour := range tours {
		guideIDs, ok := tour["guides"].([]int64)
		if !ok {
			continue
		}
		guides := make([]query.Document, 0, len(guideIDs))
		for _, id := range guideIDs {
			if guide, found := users[id]; found {
				guides = append(guides, guide)
			}
		}
		tour["guides"] = guides
	}

	return nil
}

// withReviewsPopulated attaches the reviews of tour, each with its reviewer
// populated.
func (db *DB) withReviewsPopulated(ctx context.Context, tour query.Document) error {
	base := Reviews.Select().Where(sq.Eq{"tour_id": tour.ID()})
	reviews, err := query.New(Reviews, base, nil).Sort().LimitFields().Execute(ctx, db)
	if err != nil {
		return err
	}
	if err = db.withReviewersPopulated(ctx, reviews); err != nil {
		return err
	}

	tour["reviews"] = reviews
	return nil
}

// withReviewersPopulated replaces the user id of every review with the
// reviewer's name and photo. Reviews by deactivated users get a null user.
func (db *DB) withReviewersPopulated(ctx context.Context, reviews []query.Document) error {
	var ids []int64
	for _, review := range reviews {
		if id, ok := review["user"].(int64); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	users, err := db.usersByID(ctx, ids, reviewerFields)
	if err != nil {
		return err
	}

	for _, review := range reviews {
		id, ok := review["user"].(int64)
		if !ok {
			continue
		}
		if user, found := users[id]; found {
			review["user"] = user
		} else {
			review["user"] = nil
		}
	}

	return nil
}

func (db *DB) usersByID(ctx context.Context, ids []int64, fields url.Values) (map[int64]query.Document, error) {
	base := activeUsers(Users.Select()).Where(sq.Eq{"id": uniqueIDs(ids)})
	docs, err := query.New(Users, base, fields).LimitFields().Execute(ctx, db)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]query.Document, len(docs))
	for _, doc := range docs {
		byID[doc.ID()] = doc
	}
	return byID, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
