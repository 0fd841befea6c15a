// Package api talks to the remote user directory.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Directory interface) covering
//     List, Get, Create, Update and Delete.
//  2. A concrete HTTP implementation (see HTTPDirectory) over net/http with
//     JSON bodies. GET /users returns the full collection; the fixture
//     backend ignores page parameters, so pagination is sliced client-side.
//
// # Error Handling
//
// Non-2xx responses surface as *StatusError; 404 additionally matches
// ErrNotFound via errors.Is. Transport failures wrap ErrUnavailable. Reads
// retry transient failures with exponential backoff; writes never do.
//
// Concurrency & Contexts
//
// HTTPDirectory is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
