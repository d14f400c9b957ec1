package adapter

import "errors"

// Sentinel errors mapped from transport-level failures. Use [errors.Is]
// to match; the concrete error carries the response body for logging.
var (
	// ErrBadRequest is returned for HTTP 400 responses.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned for HTTP 401 responses: the token is
	// missing, expired, or the credentials were rejected.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden is returned for HTTP 403 responses.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for HTTP 409 responses. For storage writes
	// this is the compare-and-set rejection; the current server manifest
	// accompanies the error.
	ErrConflict = errors.New("version conflict")

	// ErrInternalServerError is returned for HTTP 500 responses.
	ErrInternalServerError = errors.New("internal server error")

	// ErrBadGateway is returned for HTTP 502 responses.
	ErrBadGateway = errors.New("bad gateway")

	// ErrNetwork is returned when the request never produced an HTTP
	// response: DNS failure, connection refused, timeout, cancelled
	// context. These are always worth retrying later.
	ErrNetwork = errors.New("network error")
)
