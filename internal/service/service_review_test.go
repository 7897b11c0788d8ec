// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/internal/mock"
	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/internal/store"
	"github.com/MKhiriev/go-tours/internal/validators"
	"github.com/MKhiriev/go-tours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReviewSvc(t *testing.T) (ReviewService, *mock.MockReviewRepository, *mock.MockTourRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reviews := mock.NewMockReviewRepository(ctrl)
	tours := mock.NewMockTourRepository(ctrl)

	svc := NewReviewService(reviews, tours, validators.NewReviewValidator(), logger.Nop())
	return svc, reviews, tours
}

var (
	author = models.Principal{UserID: 10, Role: models.RoleUser}
	other  = models.Principal{UserID: 11, Role: models.RoleUser}
	admin  = models.Principal{UserID: 1, Role: models.RoleAdmin}
)

func TestReviewService_CreateReview_RecalculatesRatings(t *testing.T) {
	svc, reviews, tours := newTestReviewSvc(t)

	review := models.Review{Review: "Loved it", Rating: 5, TourID: 3, UserID: 10}
	gomock.InOrder(
		reviews.EXPECT().CreateReview(gomock.Any(), review).Return(query.Document{"id": int64(8)}, nil),
		tours.EXPECT().RecalculateRatings(gomock.Any(), int64(3)).Return(nil),
	)

	doc, err := svc.CreateReview(context.Background(), review)
	require.NoError(t, err)
	assert.Equal(t, int64(8), doc.ID())
}

func TestReviewService_CreateReview_RatingFailureIsNotFatal(t *testing.T) {
	svc, reviews, tours := newTestReviewSvc(t)

	reviews.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(query.Document{"id": int64(8)}, nil)
	tours.EXPECT().RecalculateRatings(gomock.Any(), int64(3)).Return(errors.New("deadlock"))

	_, err := svc.CreateReview(context.Background(), models.Review{Review: "ok", Rating: 4, TourID: 3, UserID: 10})
	assert.NoError(t, err)
}

func TestReviewService_CreateReview_Rejections(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		svc, _, _ := newTestReviewSvc(t)

		_, err := svc.CreateReview(context.Background(), models.Review{Review: "meh", Rating: 6, TourID: 3, UserID: 10})
		assert.ErrorIs(t, err, validators.ErrRatingOutOfRange)
	})

	t.Run("duplicate review skips recalculation", func(t *testing.T) {
		svc, reviews, _ := newTestReviewSvc(t)

		reviews.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil, store.ErrAlreadyReviewed)

		_, err := svc.CreateReview(context.Background(), models.Review{Review: "again", Rating: 4, TourID: 3, UserID: 10})
		assert.ErrorIs(t, err, store.ErrAlreadyReviewed)
	})
}

func TestReviewService_UpdateReview_Ownership(t *testing.T) {
	rating := 2
	update := models.ReviewUpdate{Rating: &rating}
	stored := models.Review{ID: 5, TourID: 3, UserID: author.UserID}

	tests := []struct {
		name      string
		principal models.Principal
		allowed   bool
	}{
		{name: "author", principal: author, allowed: true},
		{name: "admin", principal: admin, allowed: true},
		{name: "someone else", principal: other, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reviews, tours := newTestReviewSvc(t)

			reviews.EXPECT().FindReview(gomock.Any(), int64(5)).Return(stored, nil)
			if tt.allowed {
				reviews.EXPECT().UpdateReview(gomock.Any(), int64(5), update).Return(query.Document{"id": int64(5)}, nil)
				tours.EXPECT().RecalculateRatings(gomock.Any(), int64(3)).Return(nil)
			}

			_, err := svc.UpdateReview(context.Background(), tt.principal, 5, update)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNotReviewAuthor)
			}
		})
	}
}

func TestReviewService_UpdateReview_NotFound(t *testing.T) {
	svc, reviews, _ := newTestReviewSvc(t)

	rating := 3
	reviews.EXPECT().FindReview(gomock.Any(), int64(404)).Return(models.Review{}, store.ErrReviewNotFound)

	_, err := svc.UpdateReview(context.Background(), author, 404, models.ReviewUpdate{Rating: &rating})
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}

func TestReviewService_DeleteReview(t *testing.T) {
	t.Run("recalculates the owning tour", func(t *testing.T) {
		svc, reviews, tours := newTestReviewSvc(t)

		gomock.InOrder(
			reviews.EXPECT().FindReview(gomock.Any(), int64(5)).Return(models.Review{ID: 5, TourID: 3, UserID: author.UserID}, nil),
			reviews.EXPECT().DeleteReview(gomock.Any(), int64(5)).Return(int64(3), nil),
			tours.EXPECT().RecalculateRatings(gomock.Any(), int64(3)).Return(nil),
		)

		assert.NoError(t, svc.DeleteReview(context.Background(), author, 5))
	})

	t.Run("foreign review", func(t *testing.T) {
		svc, reviews, _ := newTestReviewSvc(t)

		reviews.EXPECT().FindReview(gomock.Any(), int64(5)).Return(models.Review{ID: 5, TourID: 3, UserID: author.UserID}, nil)

		assert.ErrorIs(t, svc.DeleteReview(context.Background(), other, 5), ErrNotReviewAuthor)
	})
}
