// Package fakeapi implements an in-process stand-in for the hospital REST API.
//
// It serves POST /auth/login, POST /auth/refresh and the /patients/*
// endpoints under the /api prefix. Access tokens are HS256 JWTs, refresh
// tokens are opaque and rotate on every refresh. [State] exposes hooks to
// revoke tokens, force authorization failures, inject error and warning
// payloads and count refresh calls, so the client's refresh protocol can be
// exercised end to end.
//
// The package backs cmd/fakeapi for local runs and the integration tests of
// the client packages.
package fakeapi
