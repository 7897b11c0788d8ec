// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-tours/internal/query"
	"github.com/MKhiriev/go-tours/internal/store"
	"github.com/MKhiriev/go-tours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminUser     = models.User{ID: 1, Name: "Jonas Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	leadGuideUser = models.User{ID: 2, Name: "Steve Lead", Email: "lead@example.com", Role: models.RoleLeadGuide}
	guideUser     = models.User{ID: 3, Name: "Kate Guide", Email: "guide@example.com", Role: models.RoleGuide}
)

// asUser makes protect resolve the request's bearer token to user.
func asUser(m *serviceMocks, r *http.Request, user models.User) *http.Request {
	token := user.Email + ".jwt"
	m.auth.EXPECT().Authenticate(gomock.Any(), token).Return(user, nil)
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

func TestGetTour(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.tours.EXPECT().GetTour(gomock.Any(), int64(5)).
			Return(query.Document{"id": int64(5), "name": "The Sea Explorer", "reviews": []any{}}, nil)

		rr := httptest.NewRecorder()
		h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tours/5", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		_, data := decodeEnvelope(t, rr.Body)

		var tour map[string]any
		require.NoError(t, json.Unmarshal(data["tour"], &tour))
		assert.Equal(t, "The Sea Explorer", tour["name"])
	})

	t.Run("secret or missing", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.tours.EXPECT().GetTour(gomock.Any(), int64(404)).Return(nil, store.ErrTourNotFound)

		rr := httptest.NewRecorder()
		h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tours/404", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rr := httptest.NewRecorder()
		h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tours/5c88fa8c", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env, _ := decodeEnvelope(t, rr.Body)
		assert.Equal(t, models.StatusFail, env.Status)
	})
}

func TestCreateTour(t *testing.T) {
	h, m := newMockedHandler(t)

	body := models.Tour{
		Name:         "The Park Camper",
		Duration:     10,
		MaxGroupSize: 15,
		Difficulty:   models.Difficulty("medium"),
		Price:        1497,
		Summary:      "Breathing in nature in the most spectacular national parks",
		ImageCover:   "tour-9-cover.jpg",
	}
	m.tours.EXPECT().CreateTour(gomock.Any(), body).Return(query.Document{"id": int64(12), "name": body.Name}, nil)

	req := asUser(m, jsonRequest(t, http.MethodPost, "/api/v1/tours", body), leadGuideUser)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestUpdateAndDeleteTour(t *testing.T) {
	h, m := newMockedHandler(t)
	router := h.Init()

	price := 997.0
	m.tours.EXPECT().UpdateTour(gomock.Any(), int64(5), models.TourUpdate{Price: &price}).
		Return(query.Document{"id": int64(5), "price": price}, nil)
	m.tours.EXPECT().DeleteTour(gomock.Any(), int64(5)).Return(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, asUser(m, jsonRequest(t, http.MethodPatch, "/api/v1/tours/5", map[string]any{"price": price}), adminUser))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, asUser(m, httptest.NewRequest(http.MethodDelete, "/api/v1/tours/5", nil), adminUser))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestTourStats(t *testing.T) {
	h, m := newMockedHandler(t)
	m.tours.EXPECT().TourStats(gomock.Any()).Return([]models.TourStats{
		{Difficulty: "DIFFICULT", NumTours: 2, AvgRating: 4.6, AvgPrice: 1997, MinPrice: 997, MaxPrice: 2997},
	}, nil)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tours/tour-stats", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	_, data := decodeEnvelope(t, rr.Body)

	var stats []models.TourStats
	require.NoError(t, json.Unmarshal(data["stats"], &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, "DIFFICULT", stats[0].Difficulty)
}

func TestMonthlyPlan(t *testing.T) {
	tests := []struct {
		name       string
		year       string
		user       models.User
		wantCall   bool
		wantStatus int
	}{
		{name: "guide", year: "2021", user: guideUser, wantCall: true, wantStatus: http.StatusOK},
		{name: "plain user", year: "2021", user: testUser, wantStatus: http.StatusForbidden},
		{name: "two digit year", year: "21", user: adminUser, wantStatus: http.StatusBadRequest},
		{name: "not a number", year: "twenty", user: adminUser, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.wantCall {
				m.tours.EXPECT().MonthlyPlan(gomock.Any(), 2021).Return([]models.MonthlyPlan{
					{Month: 7, NumTourStarts: 3, Tours: []string{"The Sea Explorer", "The Park Camper", "The Forest Hiker"}},
				}, nil)
			}

			req := asUser(m, httptest.NewRequest(http.MethodGet, "/api/v1/tours/monthly-plan/"+tt.year, nil), tt.user)
			rr := httptest.NewRecorder()
			h.Init().ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCall {
				env, _ := decodeEnvelope(t, rr.Body)
				require.NotNil(t, env.Results)
				assert.Equal(t, 1, *env.Results)
			}
		})
	}
}
