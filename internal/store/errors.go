// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the local stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrIncompleteSession is returned by Establish when either the token or
	// the user identity is missing.
	ErrIncompleteSession = errors.New("session requires both token and user")

	// ErrMalformedBlob is returned when a stored blob cannot be decoded into
	// its expected shape.
	ErrMalformedBlob = errors.New("malformed local blob")

	// ErrStoreClosed is returned by the in-memory store after Close.
	ErrStoreClosed = errors.New("local store is closed")
)

// Low-level database operation errors. These are returned (wrapped) by the
// SQLite blob store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
