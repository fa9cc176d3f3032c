// Package client is the transport layer of the Momentum client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) with one
//     method per remote resource: onboarding, login, profile, daily plan,
//     objectives, check-in, tips, hobbies and workout plans.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that resolves
//     every path against a single base address and injects
//     "Authorization: Token <credential>" read from a TokenSource at send
//     time. The header is omitted while no credential is set.
//
// # Error Handling
//
// Failures come back as *NetworkError (no response; matches ErrUnavailable)
// or *HTTPError (non-success status with the server message; 401/403 match
// ErrUnauthorized, 404 matches ErrNotFound). Nothing is retried or cached.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
