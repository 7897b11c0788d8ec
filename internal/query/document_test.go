// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDocuments_Kinds(t *testing.T) {
	users := Collection{
		Table: "users",
		Fields: []Field{
			{Name: "id", Column: "id", Kind: KindInt},
			{Name: "active", Column: "active", Kind: KindBool},
			{Name: "tags", Column: "tags", Kind: KindTextArray},
			{Name: "location", Column: "location", Kind: KindJSON},
			{Name: "photo", Column: "photo", Kind: KindText},
		},
	}

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, active, tags, location, photo FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "active", "tags", "location", "photo"}).
			AddRow(int64(7), true, "{sea,sun}", `{"type":"Point"}`, nil).
			AddRow(int64(8), false, nil, nil, "user-8.jpg"))

	docs, err := New(users, users.Select(), nil).Execute(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, true, docs[0]["active"])
	assert.Equal(t, []string{"sea", "sun"}, docs[0]["tags"])
	assert.JSONEq(t, `{"type":"Point"}`, string(docs[0]["location"].(json.RawMessage)))
	assert.Nil(t, docs[0]["photo"])

	assert.Equal(t, []string{}, docs[1]["tags"])
	assert.Nil(t, docs[1]["location"])
	assert.Equal(t, "user-8.jpg", docs[1]["photo"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "time[]", KindTimeArray.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
