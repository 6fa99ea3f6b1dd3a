package metro

import "errors"

var (
	// ErrNotFound is returned when a line or station does not exist, or when
	// no line contains both stations of a pair.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for out-of-range positions and malformed
	// line definitions (empty names, non-positive distances, negative fares,
	// mismatched fare matrices).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrForbidden is returned for edits that are well-formed but not allowed:
	// removing the interchange station, shrinking a line below two stations,
	// or creating a line whose name is already taken.
	ErrForbidden = errors.New("forbidden")

	// ErrNotSaved is returned when a mutation was applied to the catalog but
	// could not be persisted. The in-memory catalog keeps the change.
	ErrNotSaved = errors.New("change applied but not saved")
)
