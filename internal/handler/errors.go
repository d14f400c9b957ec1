// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address, leaving the process with no
// transport to serve. This is a fatal misconfiguration and aborts startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
