// Package session owns the client's authentication state.
//
// A Manager holds the current user (or none) and a loading flag, exposes
// the sign-in, sign-up, sign-out and password-reset operations, and keeps
// the session token and profile in a securestore.Store so a session
// survives restarts.
//
// # Lifecycle
//
// New returns a manager that is loading and has no user. Restore (or Open,
// which calls it) reads the persisted session once at startup and ends in
// one of two states: a restored user, or none. Every operation sets
// IsLoading before its first suspension point and clears it on every exit
// path.
//
// # Observers
//
// Consumers call Subscribe to receive State snapshots. Listeners run
// synchronously on the goroutine that changed the state, so a change is seen
// by every listener before the operation returns.
//
// # Concurrency
//
// The manager guards its memory but does not serialize operations. Callers
// are expected to start a new operation only when IsLoading is false;
// overlapping calls race on storage and on the final state, last write wins.
//
// # Errors
//
// Failures are reported with the sentinel errors in errors.go and should be
// matched with errors.Is. Restore and SignOut never fail: storage problems
// are logged and the manager falls back to the signed-out state.
package session
