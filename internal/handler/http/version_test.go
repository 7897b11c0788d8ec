// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-tours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	h, m := newMockedHandler(t)
	want := models.BuildInfo{Version: "v1.4.0", Date: "2026-10-01", Commit: "a1b2c3d"}
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(want)

	rr := httptest.NewRecorder()
	h.handle(h.getServerVersion)(rr, httptest.NewRequest(http.MethodGet, "/api/v1/version", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	env, data := decodeEnvelope(t, rr.Body)
	assert.Equal(t, models.StatusSuccess, env.Status)

	var got models.BuildInfo
	require.NoError(t, json.Unmarshal(data["build"], &got))
	assert.Equal(t, want, got)
}
