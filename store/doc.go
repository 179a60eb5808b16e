// SPDX-License-Identifier: MIT
//
// Package store persists built sphere graphs in SQLite.
//
// The database is opened with the pure-Go modernc.org/sqlite driver and its
// schema is managed by golang-migrate from migrations embedded in the
// binary. Each saved graph gets a random UUID and three kinds of rows:
//
//	graphs   one row: resolution, ordering, k, kernel width, counts
//	vertices one row per vertex: coordinates and (colatitude, longitude)
//	edges    one row per stored W entry (i < j for symmetric W)
//
// A graph is written in a single transaction, so readers never observe a
// partially saved graph.
package store
