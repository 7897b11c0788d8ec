// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query turns the query string of a list request into a SQL query
// over a document collection.
//
// A Builder is created from a Collection (the allow-list of public fields
// and the SQL expressions behind them), a base squirrel.SelectBuilder and
// the request parameters. Filter, Sort, LimitFields and Paginate record
// their part of the query in any order; nothing is validated or sent to the
// database until ToSQL or Execute is called. Client-provided names never
// reach the SQL text: every field is resolved through the Collection.
//
//	docs, err := query.New(tours, tours.Select(), r.URL.Query()).
//		Filter().
//		Sort().
//		LimitFields().
//		Paginate().
//		Execute(ctx, db)
package query
