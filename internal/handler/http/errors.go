// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Callers can match against it with [errors.Is].
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
