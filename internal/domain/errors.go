package domain

import "errors"

// Sentinel errors surfaced by the service layer.
//
// ErrNotFound deliberately covers both "record absent" and "record hidden
// from this viewer" so handlers cannot leak a distinct forbidden status for
// resources the viewer is not allowed to see.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("authentication required")
)
