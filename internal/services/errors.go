package services

import "errors"

// Sentinel errors for the handler layer to match on with errors.Is. The
// wrapped messages carry more detail (which entity, which cause) for logs
// and tests, but only the sentinel decides the HTTP status.
var (
	// ErrMissingCredentials signals a login request with an absent
	// username or password. Maps to 400.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrInvalidCredentials signals a failed login. Unknown username and
	// wrong password both wrap this sentinel so callers cannot enumerate
	// users; the wrapping message records the actual cause.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound signals an identifier absent from its collection.
	// Maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrSnapshotMissing signals an empty or absent generated snapshot at
	// startup. Fatal: the server must not serve traffic without data.
	ErrSnapshotMissing = errors.New("snapshot not found, run the generate-db command first")
)
