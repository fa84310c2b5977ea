package datacompile

import (
	"errors"
	"fmt"
)

// ErrInvalidModel is returned when the model breaks an invariant the
// upstream validation guarantees, such as asking for a stack dataset on an
// unstacked chart. It signals a caller bug, not bad user input.
var ErrInvalidModel = errors.New("invalid model state")

func invalidModel(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidModel, fmt.Sprintf(format, args...))
}
