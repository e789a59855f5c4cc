package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrConflict = the server rejected because the entity already changed
	// state server-side. Resolved by reload, never by blind retry.
	ErrConflict = errors.New("conflict")
)

type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return "upstream " + e.Op + ": " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// IsNetwork reports whether err is a transport-level failure (as opposed to a
// validation or conflict rejection).
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
