// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package server

import "errors"

var (
	// errNoServersAreCreated aborts startup when the configuration names
	// no listen address for the process to serve on.
	errNoServersAreCreated = errors.New("no servers are created")
)
