// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the go-tours server
// configuration.
//
// Configuration is assembled from several sources. A field set by an
// earlier source is kept; later sources only fill what is still empty:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
