package negentropy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned on API misuse: initiating twice or
	// from the wrong role, reconciling out of turn, constructing a
	// session over an unsealed store, or bad session options.
	ErrInvalidState = errors.New("invalid session state")

	// ErrAlreadyConverged is returned when a non-empty message arrives
	// after the session has converged. It matches ErrInvalidState under
	// errors.Is.
	ErrAlreadyConverged = fmt.Errorf("%w: already converged", ErrInvalidState)

	// ErrFrameSizeTooSmall is returned for a nonzero frame size limit
	// below MinFrameSizeLimit.
	ErrFrameSizeTooSmall = errors.New("frame size limit too small")
)
