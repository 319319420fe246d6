// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

// Response messages of the fake API. The wording follows the hospital API,
// so client code and tests see the same "detail" strings in both.
const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgCredentialsRequired is returned when username or password is blank.
	MsgCredentialsRequired = "username and password are required"

	// MsgInvalidCredentials is returned when the username/password pair does
	// not match any account.
	MsgInvalidCredentials = "No active account found with the given credentials"

	// MsgRefreshTokenInvalid is returned when a refresh token is unknown,
	// already used, or expired.
	MsgRefreshTokenInvalid = "Token is invalid or expired"

	// MsgNoCredentials is returned when a protected route is called without
	// an Authorization header.
	MsgNoCredentials = "Authentication credentials were not provided."

	// MsgAccessTokenInvalid is returned when the access token is rejected.
	MsgAccessTokenInvalid = "Given token not valid for any token type"

	// MsgNotFound is returned for unknown method/route combinations.
	MsgNotFound = "Not found."

	// MsgPermissionDenied is returned when the account has no patient record.
	MsgPermissionDenied = "You do not have permission to perform this action."

	// MsgInvalidTaskID is returned when the task id path segment is not a
	// number.
	MsgInvalidTaskID = "invalid task id"

	// MsgQuestionRequired is returned when the AI chat question is blank.
	MsgQuestionRequired = "question is required"

	// CodeTokenNotValid is the error code attached to token rejections.
	CodeTokenNotValid = "token_not_valid"
)
