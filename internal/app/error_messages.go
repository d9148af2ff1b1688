// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// status API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of a request. Keeping them in
// one place keeps the wording consistent throughout the API.
package app

const (
	// MsgItemNotFound is returned when the requested id is not in the
	// cached library.
	MsgItemNotFound = "item not found"

	// MsgInvalidFilter prefixes the reason a filter query was rejected,
	// e.g. an invalid regular expression.
	MsgInvalidFilter = "invalid filter"

	// MsgReloadFailed prefixes the executor error when a reload requested
	// over HTTP failed. The previous cache is still served.
	MsgReloadFailed = "reload failed"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMissingToken is returned when the Authorization header is absent
	// or is not a bearer token.
	MsgMissingToken = "missing bearer token"
)
