// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddress = errors.New("fake API listen address is not configured")
	errNoHandler = errors.New("fake API handler is nil")
	// errServeFailed wraps a listener error that stopped the server before
	// shutdown was requested.
	errServeFailed = errors.New("fake API stopped serving")
)
