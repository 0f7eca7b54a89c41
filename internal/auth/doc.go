// Package auth provides the HTTP implementation of the domain.Authenticator
// interface used by spiral.
//
// The auth service issues anonymous sessions: no account or password, just a
// generated user id and a bearer token the client stores locally. Requests
// are JSON over HTTP and accept a context for cancellation and deadlines.
// Non-2xx statuses are returned as errors with the HTTP method, full URL,
// and status text to aid diagnostics.
package auth
