package islx

import (
	"errors"
	"fmt"
)

// Sentinel errors classify every caller-triggered failure mode, matching on
// errors.Is rather than string comparison.
var (
	// ErrInvalidArgument is returned by Insert and Update for arguments that
	// violate a documented precondition: a malformed interval (s > e), an
	// endpoint not strictly between minIndex and maxIndex, or a marker that
	// already exists (on Insert). Removing an unknown marker is not an error.
	ErrInvalidArgument = errors.New("islx: invalid argument")

	// ErrInvariantViolation is returned by VerifyMarkerInvariant when a
	// structural invariant (I7) has been violated. A well-formed container
	// never returns this from any other method; its appearance indicates a
	// bug in this package rather than caller misuse.
	ErrInvariantViolation = errors.New("islx: marker invariant violated")
)

func errMarkerExists[M any](m M) error {
	return fmt.Errorf("%w: marker %v already exists", ErrInvalidArgument, m)
}

func errBadInterval[K any](s, e K) error {
	return fmt.Errorf("%w: start %v is greater than end %v", ErrInvalidArgument, s, e)
}

func errOutOfRange[K any](x K) error {
	return fmt.Errorf("%w: index %v is outside the container's range", ErrInvalidArgument, x)
}

func errInvariant(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariantViolation}, args...)...)
}
