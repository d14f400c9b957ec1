// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

// Package app contains application-level constants shared between the
// HTTP handlers and the services behind them.
package app

// Messages returned to API clients. Handlers pick one of these instead of
// leaking internal error text to the wire.
const (
	// MsgInvalidDataProvided is returned when a request body fails
	// validation before reaching the service layer.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned on failed authentication.
	MsgInvalidLoginPassword = "invalid login or password"

	// MsgInternalServerError is the catch-all message for unexpected
	// failures. Details stay in the server log.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token does
	// not parse, has a bad signature, or has expired.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoAccountIDProvided is returned when a protected route is hit
	// without an account identity in the request context.
	MsgNoAccountIDProvided = "no account id provided"

	// MsgRegistrationFailed is returned when an account cannot be
	// created.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginAlreadyExists is returned when registering with a login
	// that is already taken.
	MsgLoginAlreadyExists = "login already exists"

	// MsgLoginFailed is returned when login fails for a reason other
	// than bad credentials.
	MsgLoginFailed = "login failed"

	// MsgManifestNotFound is returned when the account has no manifest
	// yet and the request cannot be answered without one.
	MsgManifestNotFound = "manifest not found"

	// MsgNoRecordIDsProvided is returned when a read request carries an
	// empty id list.
	MsgNoRecordIDsProvided = "no record ids provided"

	// MsgEmptyWriteOperation is returned when a write request carries
	// neither inserts nor deletes.
	MsgEmptyWriteOperation = "empty write operation"

	// MsgVersionConflict is returned with 409 when a write is based on a
	// stale manifest version.
	MsgVersionConflict = "manifest version conflict"

	// MsgDuplicateRecord is returned when a write inserts a record id
	// that already exists.
	MsgDuplicateRecord = "duplicate record id"
)
