// Package setup runs the first-run configuration sequence.
//
// It validates the user-supplied API key, persists configuration via the
// domain.ConfigStore, then performs an anonymous sign-in against the
// domain.Authenticator, strictly in that order. A single sequencer instance
// allows one attempt at a time; a failed attempt may be retried.
package setup
